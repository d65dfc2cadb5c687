package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"giramae/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items keyed by "pk|sk" and honours the conditions the
// repositories use.
type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	puts     int
	failWith error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func attrS(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func fakeKey(item map[string]types.AttributeValue) string {
	if id, ok := item["id"]; ok {
		return attrS(id)
	}
	return attrS(item["user_id"]) + "|" + attrS(item["tipo_meta"])
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.puts++
	k := fakeKey(in.Item)
	if _, exists := f.items[k]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[fakeKey(in.Key)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	want := attrS(in.ExpressionAttributeValues[":uid"])
	var out []map[string]types.AttributeValue
	for _, it := range f.items {
		if attrS(it["user_id"]) == want {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	k := fakeKey(in.Key)
	it, ok := f.items[k]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	if done, _ := it["conquistado"].(*types.AttributeValueMemberBOOL); done != nil && done.Value {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("already achieved")}
	}
	updated := make(map[string]types.AttributeValue, len(it)+1)
	for name, v := range it {
		updated[name] = v
	}
	updated["conquistado"] = in.ExpressionAttributeValues[":true"]
	updated["data_conquista"] = in.ExpressionAttributeValues[":data"]
	f.items[k] = updated
	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func TestGoalDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("seed is idempotent", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := &GoalDynamoRepository{ddb: fake, tableName: "metas_usuarios"}

		require.NoError(t, repo.Seed(ctx, "u1", entities.DefaultGoalTiers()))
		require.NoError(t, repo.Seed(ctx, "u1", entities.DefaultGoalTiers()))

		goals, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, goals, 4)
		for _, g := range goals {
			assert.False(t, g.Conquistado)
		}
	})

	t.Run("seed keeps achieved tiers", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := &GoalDynamoRepository{ddb: fake, tableName: "metas_usuarios"}

		require.NoError(t, repo.Seed(ctx, "u1", entities.DefaultGoalTiers()))
		_, changed, err := repo.MarkAchieved(ctx, "u1", entities.GoalTierBronze, time.Now())
		require.NoError(t, err)
		require.True(t, changed)
		require.NoError(t, repo.Seed(ctx, "u1", entities.DefaultGoalTiers()))

		goals, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		achieved := 0
		for _, g := range goals {
			if g.Conquistado {
				achieved++
				assert.Equal(t, entities.GoalTierBronze, g.TipoMeta)
				assert.NotNil(t, g.DataConquista)
			}
		}
		assert.Equal(t, 1, achieved)
	})

	t.Run("second flip reports unchanged", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := &GoalDynamoRepository{ddb: fake, tableName: "metas_usuarios"}
		require.NoError(t, repo.Seed(ctx, "u1", entities.DefaultGoalTiers()))

		at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		first, changed, err := repo.MarkAchieved(ctx, "u1", entities.GoalTierPrata, at)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, first.Conquistado)
		assert.Equal(t, 25.0, first.GirinhasBonus)

		second, changed, err := repo.MarkAchieved(ctx, "u1", entities.GoalTierPrata, at.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		require.NotNil(t, second.DataConquista)
		assert.True(t, second.DataConquista.Equal(at))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.failWith = errors.New("throughput exceeded")
		repo := &GoalDynamoRepository{ddb: fake, tableName: "metas_usuarios"}

		assert.Error(t, repo.Seed(ctx, "u1", entities.DefaultGoalTiers()))
	})
}

func TestGirinhaPurchaseDynamoRepository(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := &GirinhaPurchaseDynamoRepository{ddb: fake, tableName: "compras_girinhas"}

	p := entities.GirinhaPurchase{
		ID:           "p1",
		UserID:       "u1",
		Quantidade:   25,
		ValorTotal:   25.5,
		Date:         time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Status:       entities.PurchaseStatusAprovado,
		MPPayloadRaw: []byte(`{"status":"approved"}`),
	}
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	_, err = repo.Create(ctx, p)
	assert.True(t, isConditionalCheckFailed(err))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 25.5, got.ValorTotal)
	assert.Equal(t, entities.PurchaseStatusAprovado, got.Status)
	assert.True(t, got.Date.Equal(p.Date))
	assert.JSONEq(t, `{"status":"approved"}`, string(got.MPPayloadRaw))

	missing, err := repo.GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	var raw girinhaPurchaseItem
	require.NoError(t, attributevalue.UnmarshalMap(fake.items["p1"], &raw))
	assert.Equal(t, "25.5", raw.ValorTotal)
}
