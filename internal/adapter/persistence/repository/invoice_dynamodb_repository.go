package repository

import (
	"context"
	"errors"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const invoicesJobIDIndex = "job_id-index"

type invoiceItem struct {
	ID                 string `dynamodbav:"id"`
	JobID              string `dynamodbav:"job_id"`
	Number             string `dynamodbav:"number"`
	Status             string `dynamodbav:"status"`
	PartsTotal         string `dynamodbav:"parts_total"`
	LaborTotal         string `dynamodbav:"labor_total"`
	TaxCode            string `dynamodbav:"tax_code"`
	TaxAmount          string `dynamodbav:"tax_amount"`
	GrandTotal         string `dynamodbav:"grand_total"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Monetary fields are stored as strings to keep the decimal representation
// exact across the wire.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:                 inv.ID,
		JobID:              inv.JobID,
		Number:             inv.Number,
		Status:             string(inv.Status),
		PartsTotal:         decimalToString(inv.PartsTotal),
		LaborTotal:         decimalToString(inv.LaborTotal),
		TaxCode:            inv.TaxCode,
		TaxAmount:          decimalToString(inv.TaxAmount),
		GrandTotal:         decimalToString(inv.GrandTotal),
		ProviderPaymentID:  inv.ProviderPaymentID,
		ProviderPayloadRaw: string(inv.ProviderPayloadRaw),
		CreatedAt:          timeToString(inv.CreatedAt),
		UpdatedAt:          timeToString(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:                it.ID,
		JobID:             it.JobID,
		Number:            it.Number,
		Status:            entities.InvoiceStatus(it.Status),
		PartsTotal:        decimalFromString(it.PartsTotal),
		LaborTotal:        decimalFromString(it.LaborTotal),
		TaxCode:           it.TaxCode,
		TaxAmount:         decimalFromString(it.TaxAmount),
		GrandTotal:        decimalFromString(it.GrandTotal),
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         timeFromString(it.CreatedAt),
		UpdatedAt:         timeFromString(it.UpdatedAt),
	}
	if it.ProviderPayloadRaw != "" {
		inv.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return inv
}
