package repository

import (
	"context"
	"errors"
	"time"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type inventoryItem struct {
	ID        string  `dynamodbav:"id"`
	Code      string  `dynamodbav:"code"`
	Name      string  `dynamodbav:"name"`
	Unit      string  `dynamodbav:"unit"`
	Category  string  `dynamodbav:"category"`
	OnHand    float64 `dynamodbav:"on_hand"`
	BuyPrice  string  `dynamodbav:"buy_price"`
	SellPrice string  `dynamodbav:"sell_price"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// InventoryDynamoRepository persists InventoryItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// on_hand is stored as a number so AdjustOnHand and the issuance/receive
// transactions can mutate it with arithmetic update expressions instead of
// read-modify-write.

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client, tableName string) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItem(it))
	if err != nil {
		return entities.InventoryItem{}, err
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
		return entities.InventoryItem{}, err
	}
	return it, nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItem(it), nil
}

func (r *InventoryDynamoRepository) List(ctx context.Context) ([]entities.InventoryItem, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

func (r *InventoryDynamoRepository) ListByCategory(ctx context.Context, category entities.ItemCategory) ([]entities.InventoryItem, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#category = :category"),
		ExpressionAttributeNames: map[string]string{
			"#category": "category",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: string(category)},
		},
	})
}

func (r *InventoryDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.InventoryItem, error) {
	items := make([]entities.InventoryItem, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it inventoryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInventoryItem(it))
		}
	}
	return items, nil
}

func (r *InventoryDynamoRepository) Save(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItem(it))
	if err != nil {
		return entities.InventoryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}
	return it, nil
}

// AdjustOnHand applies delta as a conditional arithmetic update. The condition
// keeps on_hand from ever dipping below zero; a failed condition on an
// existing item maps to interfaces.ErrInsufficientStock.
func (r *InventoryDynamoRepository) AdjustOnHand(ctx context.Context, id string, delta float64) (entities.InventoryItem, error) {
	floor := 0.0
	if delta < 0 {
		floor = -delta
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #on_hand >= :floor"),
		UpdateExpression:    aws.String("SET #on_hand = #on_hand + :delta, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#on_hand":    "on_hand",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":      &types.AttributeValueMemberN{Value: floatToString(delta)},
			":floor":      &types.AttributeValueMemberN{Value: floatToString(floor)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.InventoryItem{}, getErr
			}
			if existing.ID == "" {
				return entities.InventoryItem{}, nil
			}
			return entities.InventoryItem{}, interfaces.ErrInsufficientStock
		}
		return entities.InventoryItem{}, err
	}

	var it inventoryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItem(it), nil
}

func toInventoryItem(e entities.InventoryItem) inventoryItem {
	return inventoryItem{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		Unit:      e.Unit,
		Category:  string(e.Category),
		OnHand:    e.OnHand,
		BuyPrice:  decimalToString(e.BuyPrice),
		SellPrice: decimalToString(e.SellPrice),
		CreatedAt: timeToString(e.CreatedAt),
		UpdatedAt: timeToString(e.UpdatedAt),
	}
}

func fromInventoryItem(it inventoryItem) entities.InventoryItem {
	return entities.InventoryItem{
		ID:        it.ID,
		Code:      it.Code,
		Name:      it.Name,
		Unit:      it.Unit,
		Category:  entities.ItemCategory(it.Category),
		OnHand:    it.OnHand,
		BuyPrice:  decimalFromString(it.BuyPrice),
		SellPrice: decimalFromString(it.SellPrice),
		CreatedAt: timeFromString(it.CreatedAt),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
