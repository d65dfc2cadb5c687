package repository

import (
	"context"
	"strconv"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPurchasesTableName = "compras_girinhas"
	purchasesUserIDIndex      = "user_id-index"
)

type girinhaPurchaseItem struct {
	ID           string                 `dynamodbav:"id"`
	UserID       string                 `dynamodbav:"user_id"`
	Quantidade   int                    `dynamodbav:"quantidade"`
	ValorTotal   string                 `dynamodbav:"valor_total"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// GirinhaPurchaseDynamoRepository persists GirinhaPurchase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type GirinhaPurchaseDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IGirinhaPurchaseRepository = (*GirinhaPurchaseDynamoRepository)(nil)

func NewGirinhaPurchaseDynamoRepository(ddb *dynamodb.Client) *GirinhaPurchaseDynamoRepository {
	return &GirinhaPurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

func (r *GirinhaPurchaseDynamoRepository) Create(ctx context.Context, p entities.GirinhaPurchase) (entities.GirinhaPurchase, error) {
	av, err := attributevalue.MarshalMap(toGirinhaPurchaseItem(p))
	if err != nil {
		return entities.GirinhaPurchase{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.GirinhaPurchase{}, err
	}
	return p, nil
}

func (r *GirinhaPurchaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.GirinhaPurchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GirinhaPurchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.GirinhaPurchase{}, nil
	}

	var it girinhaPurchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GirinhaPurchase{}, err
	}
	return fromGirinhaPurchaseItem(it), nil
}

func (r *GirinhaPurchaseDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.GirinhaPurchase, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(purchasesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.GirinhaPurchase, 0, len(out.Items))
	for _, raw := range out.Items {
		var it girinhaPurchaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromGirinhaPurchaseItem(it))
	}
	return items, nil
}

func toGirinhaPurchaseItem(p entities.GirinhaPurchase) girinhaPurchaseItem {
	return girinhaPurchaseItem{
		ID:           p.ID,
		UserID:       p.UserID,
		Quantidade:   p.Quantidade,
		ValorTotal:   floatToString(p.ValorTotal),
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromGirinhaPurchaseItem(it girinhaPurchaseItem) entities.GirinhaPurchase {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	total, _ := strconv.ParseFloat(it.ValorTotal, 64)
	return entities.GirinhaPurchase{
		ID:           it.ID,
		UserID:       it.UserID,
		Quantidade:   it.Quantidade,
		ValorTotal:   total,
		Date:         dt,
		Status:       entities.PurchaseStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
