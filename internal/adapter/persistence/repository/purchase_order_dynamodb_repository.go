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

type purchaseOrderLineItem struct {
	InventoryID string  `dynamodbav:"inventory_id"`
	Name        string  `dynamodbav:"name"`
	Qty         float64 `dynamodbav:"qty"`
	UnitCost    string  `dynamodbav:"unit_cost"`
}

type purchaseOrderItem struct {
	ID         string                  `dynamodbav:"id"`
	Number     string                  `dynamodbav:"number"`
	Supplier   string                  `dynamodbav:"supplier"`
	Status     string                  `dynamodbav:"status"`
	Lines      []purchaseOrderLineItem `dynamodbav:"lines"`
	CreatedAt  string                  `dynamodbav:"created_at"`
	UpdatedAt  string                  `dynamodbav:"updated_at"`
	ReceivedAt string                  `dynamodbav:"received_at,omitempty"`
}

// PurchaseOrderDynamoRepository persists PurchaseOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// CommitReceive also writes the inventory table, so the repository carries
// both table names.

type PurchaseOrderDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	inventoryTableName string
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderDynamoRepository)(nil)

func NewPurchaseOrderDynamoRepository(ddb *dynamodb.Client, tableName, inventoryTableName string) *PurchaseOrderDynamoRepository {
	return &PurchaseOrderDynamoRepository{
		ddb:                ddb,
		tableName:          tableName,
		inventoryTableName: inventoryTableName,
	}
}

func (r *PurchaseOrderDynamoRepository) Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	av, err := attributevalue.MarshalMap(toPurchaseOrderItem(po))
	if err != nil {
		return entities.PurchaseOrder{}, err
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
		return entities.PurchaseOrder{}, err
	}
	return po, nil
}

func (r *PurchaseOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PurchaseOrder{}, nil
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

func (r *PurchaseOrderDynamoRepository) List(ctx context.Context) ([]entities.PurchaseOrder, error) {
	orders := make([]entities.PurchaseOrder, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it purchaseOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromPurchaseOrderItem(it))
		}
	}
	return orders, nil
}

func (r *PurchaseOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PurchaseOrderStatus) (entities.PurchaseOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PurchaseOrder{}, nil
		}
		return entities.PurchaseOrder{}, err
	}

	var it purchaseOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PurchaseOrder{}, err
	}
	return fromPurchaseOrderItem(it), nil
}

// CommitReceive flips the order to received and increments on-hand for every
// line, all in one TransactWriteItems call. The status condition makes the
// operation idempotent under retries: a second commit of the same order
// cancels with ErrStaleCommit instead of double-counting stock.
func (r *PurchaseOrderDynamoRepository) CommitReceive(ctx context.Context, po entities.PurchaseOrder) error {
	now := timeToString(time.Now().UTC())

	items := make([]types.TransactWriteItem, 0, len(po.Lines)+1)
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: po.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :ordered"),
			UpdateExpression:    aws.String("SET #status = :received, #received_at = :now, #updated_at = :now"),
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#status":      "status",
				"#received_at": "received_at",
				"#updated_at":  "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ordered":  &types.AttributeValueMemberS{Value: string(entities.PurchaseOrderStatusOrdered)},
				":received": &types.AttributeValueMemberS{Value: string(entities.PurchaseOrderStatusReceived)},
				":now":      &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	for _, line := range po.Lines {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.inventoryTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: line.InventoryID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #on_hand = #on_hand + :qty, #updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#on_hand":    "on_hand",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty": &types.AttributeValueMemberN{Value: floatToString(line.Qty)},
					":now": &types.AttributeValueMemberS{Value: now},
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == conditionalCheckFailedCode {
					return interfaces.ErrStaleCommit
				}
			}
		}
		return err
	}
	return nil
}

func toPurchaseOrderItem(po entities.PurchaseOrder) purchaseOrderItem {
	lines := make([]purchaseOrderLineItem, 0, len(po.Lines))
	for _, l := range po.Lines {
		lines = append(lines, purchaseOrderLineItem{
			InventoryID: l.InventoryID,
			Name:        l.Name,
			Qty:         l.Qty,
			UnitCost:    decimalToString(l.UnitCost),
		})
	}
	return purchaseOrderItem{
		ID:         po.ID,
		Number:     po.Number,
		Supplier:   po.Supplier,
		Status:     string(po.Status),
		Lines:      lines,
		CreatedAt:  timeToString(po.CreatedAt),
		UpdatedAt:  timeToString(po.UpdatedAt),
		ReceivedAt: timeToString(po.ReceivedAt),
	}
}

func fromPurchaseOrderItem(it purchaseOrderItem) entities.PurchaseOrder {
	lines := make([]entities.PurchaseOrderLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.PurchaseOrderLine{
			InventoryID: l.InventoryID,
			Name:        l.Name,
			Qty:         l.Qty,
			UnitCost:    decimalFromString(l.UnitCost),
		})
	}
	return entities.PurchaseOrder{
		ID:         it.ID,
		Number:     it.Number,
		Supplier:   it.Supplier,
		Status:     entities.PurchaseOrderStatus(it.Status),
		Lines:      lines,
		CreatedAt:  timeFromString(it.CreatedAt),
		UpdatedAt:  timeFromString(it.UpdatedAt),
		ReceivedAt: timeFromString(it.ReceivedAt),
	}
}
