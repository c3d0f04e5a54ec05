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

type partLineItem struct {
	InventoryID string  `dynamodbav:"inventory_id,omitempty"`
	Code        string  `dynamodbav:"code,omitempty"`
	Name        string  `dynamodbav:"name"`
	Qty         float64 `dynamodbav:"qty"`
	HasArrived  bool    `dynamodbav:"has_arrived"`
	IsIndent    bool    `dynamodbav:"is_indent"`
	ETA         string  `dynamodbav:"eta,omitempty"`
}

type serviceLineItem struct {
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type usageLogItem struct {
	InventoryID string  `dynamodbav:"inventory_id"`
	Name        string  `dynamodbav:"name"`
	Qty         float64 `dynamodbav:"qty"`
	UnitPrice   string  `dynamodbav:"unit_price"`
	LineIndex   int     `dynamodbav:"line_index"`
	IssuedAt    string  `dynamodbav:"issued_at"`
}

type jobItem struct {
	ID              string            `dynamodbav:"id"`
	WorkOrderNumber string            `dynamodbav:"work_order_number,omitempty"`
	PoliceNumber    string            `dynamodbav:"police_number"`
	CustomerName    string            `dynamodbav:"customer_name,omitempty"`
	Status          string            `dynamodbav:"status"`
	IsClosed        bool              `dynamodbav:"is_closed"`
	IsDeleted       bool              `dynamodbav:"is_deleted"`
	OnPremises      bool              `dynamodbav:"on_premises"`
	IntakeTime      string            `dynamodbav:"intake_time,omitempty"`
	PartLines       []partLineItem    `dynamodbav:"part_lines"`
	ServiceLines    []serviceLineItem `dynamodbav:"service_lines"`
	UsageLog        []usageLogItem    `dynamodbav:"usage_log"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// part_lines is stored as a DynamoDB list so the issuance transaction can
// flip part_lines[i].has_arrived with a positional update expression, and
// usage_log as a list so the same transaction can list_append to it.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client, tableName string) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	jobs := make([]entities.Job, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#is_deleted = :false"),
		ExpressionAttributeNames: map[string]string{
			"#is_deleted": "is_deleted",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobItem(it))
		}
	}
	return jobs, nil
}

func (r *JobDynamoRepository) Save(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	return j, nil
}

func toJobItem(j entities.Job) jobItem {
	partLines := make([]partLineItem, 0, len(j.PartLines))
	for _, l := range j.PartLines {
		partLines = append(partLines, partLineItem{
			InventoryID: l.InventoryID,
			Code:        l.Code,
			Name:        l.Name,
			Qty:         l.Qty,
			HasArrived:  l.HasArrived,
			IsIndent:    l.IsIndent,
			ETA:         l.ETA,
		})
	}
	serviceLines := make([]serviceLineItem, 0, len(j.ServiceLines))
	for _, l := range j.ServiceLines {
		serviceLines = append(serviceLines, serviceLineItem{
			Name:  l.Name,
			Price: decimalToString(l.Price),
		})
	}
	usageLog := make([]usageLogItem, 0, len(j.UsageLog))
	for _, u := range j.UsageLog {
		usageLog = append(usageLog, toUsageLogItem(u))
	}

	return jobItem{
		ID:              j.ID,
		WorkOrderNumber: j.WorkOrderNumber,
		PoliceNumber:    j.PoliceNumber,
		CustomerName:    j.CustomerName,
		Status:          string(j.Status),
		IsClosed:        j.IsClosed,
		IsDeleted:       j.IsDeleted,
		OnPremises:      j.OnPremises,
		IntakeTime:      timeToString(j.IntakeTime),
		PartLines:       partLines,
		ServiceLines:    serviceLines,
		UsageLog:        usageLog,
		CreatedAt:       timeToString(j.CreatedAt),
		UpdatedAt:       timeToString(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	partLines := make([]entities.PartLine, 0, len(it.PartLines))
	for _, l := range it.PartLines {
		partLines = append(partLines, entities.PartLine{
			InventoryID: l.InventoryID,
			Code:        l.Code,
			Name:        l.Name,
			Qty:         l.Qty,
			HasArrived:  l.HasArrived,
			IsIndent:    l.IsIndent,
			ETA:         l.ETA,
		})
	}
	serviceLines := make([]entities.ServiceLine, 0, len(it.ServiceLines))
	for _, l := range it.ServiceLines {
		serviceLines = append(serviceLines, entities.ServiceLine{
			Name:  l.Name,
			Price: decimalFromString(l.Price),
		})
	}
	usageLog := make([]entities.UsageLogEntry, 0, len(it.UsageLog))
	for _, u := range it.UsageLog {
		usageLog = append(usageLog, entities.UsageLogEntry{
			InventoryID: u.InventoryID,
			Name:        u.Name,
			Qty:         u.Qty,
			UnitPrice:   decimalFromString(u.UnitPrice),
			LineIndex:   u.LineIndex,
			IssuedAt:    timeFromString(u.IssuedAt),
		})
	}

	return entities.Job{
		ID:              it.ID,
		WorkOrderNumber: it.WorkOrderNumber,
		PoliceNumber:    it.PoliceNumber,
		CustomerName:    it.CustomerName,
		Status:          entities.JobStatus(it.Status),
		IsClosed:        it.IsClosed,
		IsDeleted:       it.IsDeleted,
		OnPremises:      it.OnPremises,
		IntakeTime:      timeFromString(it.IntakeTime),
		PartLines:       partLines,
		ServiceLines:    serviceLines,
		UsageLog:        usageLog,
		CreatedAt:       timeFromString(it.CreatedAt),
		UpdatedAt:       timeFromString(it.UpdatedAt),
	}
}

func toUsageLogItem(u entities.UsageLogEntry) usageLogItem {
	return usageLogItem{
		InventoryID: u.InventoryID,
		Name:        u.Name,
		Qty:         u.Qty,
		UnitPrice:   decimalToString(u.UnitPrice),
		LineIndex:   u.LineIndex,
		IssuedAt:    timeToString(u.IssuedAt),
	}
}
