package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const conditionalCheckFailedCode = "ConditionalCheckFailed"

// IssuanceDynamoRepository commits part issuances across the inventory and
// jobs tables with a single TransactWriteItems call.
//
// The transaction holds two updates:
//  1. inventory: on_hand -= qty, conditioned on on_hand >= qty
//  2. job: part_lines[i].has_arrived = true plus a usage_log append,
//     conditioned on the line still being un-arrived and the job open
//
// DynamoDB cancels the whole transaction when either condition fails, so a
// decrement without the matching usage-log entry (or the reverse) can never
// be observed.

type IssuanceDynamoRepository struct {
	ddb                *dynamodb.Client
	jobsTableName      string
	inventoryTableName string
}

var _ interfaces.IIssuanceRepository = (*IssuanceDynamoRepository)(nil)

func NewIssuanceDynamoRepository(ddb *dynamodb.Client, jobsTableName, inventoryTableName string) *IssuanceDynamoRepository {
	return &IssuanceDynamoRepository{
		ddb:                ddb,
		jobsTableName:      jobsTableName,
		inventoryTableName: inventoryTableName,
	}
}

func (r *IssuanceDynamoRepository) CommitIssue(ctx context.Context, cmd interfaces.IssueCommand) error {
	now := time.Now().UTC()

	entryAV, err := attributevalue.MarshalMap(toUsageLogItem(entities.UsageLogEntry{
		InventoryID: cmd.InventoryID,
		Name:        cmd.ItemName,
		Qty:         cmd.Qty,
		UnitPrice:   cmd.UnitPrice,
		LineIndex:   cmd.LineIndex,
		IssuedAt:    now,
	}))
	if err != nil {
		return err
	}

	stockUpdate := types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.inventoryTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: cmd.InventoryID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #on_hand >= :qty"),
			UpdateExpression:    aws.String("SET #on_hand = #on_hand - :qty, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#on_hand":    "on_hand",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":qty":        &types.AttributeValueMemberN{Value: floatToString(cmd.Qty)},
				":updated_at": &types.AttributeValueMemberS{Value: timeToString(now)},
			},
		},
	}

	jobUpdate := types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.jobsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: cmd.JobID},
			},
			ConditionExpression: aws.String(fmt.Sprintf(
				"attribute_exists(#id) AND #part_lines[%d].#has_arrived = :false AND #is_closed = :false AND #is_deleted = :false",
				cmd.LineIndex,
			)),
			UpdateExpression: aws.String(fmt.Sprintf(
				"SET #part_lines[%d].#has_arrived = :true, #usage_log = list_append(if_not_exists(#usage_log, :empty), :entry), #updated_at = :updated_at",
				cmd.LineIndex,
			)),
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#part_lines":  "part_lines",
				"#has_arrived": "has_arrived",
				"#usage_log":   "usage_log",
				"#is_closed":   "is_closed",
				"#is_deleted":  "is_deleted",
				"#updated_at":  "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true":       &types.AttributeValueMemberBOOL{Value: true},
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
				":entry":      &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: entryAV}}},
				":updated_at": &types.AttributeValueMemberS{Value: timeToString(now)},
			},
		},
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{stockUpdate, jobUpdate},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// Reason slots match the TransactItems order: 0 = stock, 1 = job.
			for i, reason := range tce.CancellationReasons {
				if reason.Code == nil || *reason.Code != conditionalCheckFailedCode {
					continue
				}
				if i == 0 {
					return interfaces.ErrInsufficientStock
				}
				return interfaces.ErrStaleCommit
			}
		}
		return err
	}
	return nil
}
