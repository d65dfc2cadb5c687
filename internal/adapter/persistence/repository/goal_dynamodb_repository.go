package repository

import (
	"context"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGoalsTableName = "metas_usuarios"

type goalItem struct {
	UserID            string  `dynamodbav:"user_id"`
	TipoMeta          string  `dynamodbav:"tipo_meta"`
	TrocasNecessarias int     `dynamodbav:"trocas_necessarias"`
	GirinhasBonus     float64 `dynamodbav:"girinhas_bonus"`
	Conquistado       bool    `dynamodbav:"conquistado"`
	DataConquista     string  `dynamodbav:"data_conquista,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

// GoalDynamoRepository persists per-user goal tiers in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//   - SK: tipo_meta (string)
//
// One item per (user, tier). Seeding and unlocking both rely on conditional writes,
// so concurrent exchange confirmations never credit or flip a tier twice.

type GoalDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IGoalRepository = (*GoalDynamoRepository)(nil)

func NewGoalDynamoRepository(ddb *dynamodb.Client) *GoalDynamoRepository {
	return &GoalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GOALS_TABLE", defaultGoalsTableName),
	}
}

func (r *GoalDynamoRepository) Seed(ctx context.Context, userID string, tiers []entities.GoalTier) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, tier := range tiers {
		av, err := attributevalue.MarshalMap(goalItem{
			UserID:            userID,
			TipoMeta:          string(tier.Tipo),
			TrocasNecessarias: tier.TrocasNecessarias,
			GirinhasBonus:     tier.GirinhasBonus,
			CreatedAt:         now,
		})
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#tipo)"),
			ExpressionAttributeNames: map[string]string{
				"#tipo": "tipo_meta",
			},
		})
		if err != nil && !isConditionalCheckFailed(err) {
			return err
		}
	}
	return nil
}

func (r *GoalDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Goal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	goals := make([]entities.Goal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it goalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		goals = append(goals, fromGoalItem(it))
	}
	return goals, nil
}

// MarkAchieved flips conquistado from false to true. When another writer already did
// it, the stored goal is returned with changed=false.
func (r *GoalDynamoRepository) MarkAchieved(ctx context.Context, userID string, tier entities.GoalTierName, at time.Time) (entities.Goal, bool, error) {
	key := goalKey(userID, tier)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(#tipo) AND #conquistado = :false"),
		UpdateExpression:    aws.String("SET #conquistado = :true, #data = :data"),
		ExpressionAttributeNames: map[string]string{
			"#tipo":        "tipo_meta",
			"#conquistado": "conquistado",
			"#data":        "data_conquista",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":data":  &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.Goal{}, false, err
		}
		current, gerr := r.get(ctx, key)
		return current, false, gerr
	}

	var it goalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Goal{}, false, err
	}
	return fromGoalItem(it), true, nil
}

func (r *GoalDynamoRepository) get(ctx context.Context, key map[string]types.AttributeValue) (entities.Goal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Goal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Goal{}, nil
	}
	var it goalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Goal{}, err
	}
	return fromGoalItem(it), nil
}

func goalKey(userID string, tier entities.GoalTierName) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id":   &types.AttributeValueMemberS{Value: userID},
		"tipo_meta": &types.AttributeValueMemberS{Value: string(tier)},
	}
}

func fromGoalItem(it goalItem) entities.Goal {
	g := entities.Goal{
		UserID:            it.UserID,
		TipoMeta:          entities.GoalTierName(it.TipoMeta),
		TrocasNecessarias: it.TrocasNecessarias,
		GirinhasBonus:     it.GirinhasBonus,
		Conquistado:       it.Conquistado,
	}
	if it.DataConquista != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.DataConquista); err == nil {
			g.DataConquista = &dt
		}
	}
	return g
}
