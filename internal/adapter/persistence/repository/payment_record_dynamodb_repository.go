package repository

import (
	"context"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultPaymentsTableName = "payments"

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type paymentRecordItem struct {
	ID               string `dynamodbav:"id"`
	PaypalPaymentID  string `dynamodbav:"paypal_payment_id"`
	Intent           string `dynamodbav:"intent"`
	State            string `dynamodbav:"state"`
	Cart             string `dynamodbav:"cart,omitempty"`
	PaymentMethod    string `dynamodbav:"payment_method"`
	PayerStatus      string `dynamodbav:"payer_status,omitempty"`
	PayerID          string `dynamodbav:"payer_id"`
	PayerEmail       string `dynamodbav:"payer_email,omitempty"`
	PayerFirstName   string `dynamodbav:"payer_first_name,omitempty"`
	PayerLastName    string `dynamodbav:"payer_last_name,omitempty"`
	Currency         string `dynamodbav:"currency"`
	TotalAmount      string `dynamodbav:"total_amount"`
	TransactionID    string `dynamodbav:"transaction_id"`
	TransactionState string `dynamodbav:"transaction_state"`
	TransactionFee   string `dynamodbav:"transaction_fee"`
	PaymentMode      string `dynamodbav:"payment_mode,omitempty"`
	CreateTime       string `dynamodbav:"create_time"`
	UpdateTime       string `dynamodbav:"update_time"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PaymentRecordDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentRecordDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save inserts the record under a fresh id. Existing items are never overwritten.
func (r *PaymentRecordDynamoRepository) Save(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	p.ID = uuid.NewString()
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
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
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:               p.ID,
		PaypalPaymentID:  p.PaypalPaymentID,
		Intent:           p.Intent,
		State:            p.State,
		Cart:             p.Cart,
		PaymentMethod:    p.PaymentMethod,
		PayerStatus:      p.PayerStatus,
		PayerID:          p.PayerID,
		PayerEmail:       p.PayerEmail,
		PayerFirstName:   p.PayerFirstName,
		PayerLastName:    p.PayerLastName,
		Currency:         p.Currency,
		TotalAmount:      p.TotalAmount.String(),
		TransactionID:    p.TransactionID,
		TransactionState: p.TransactionState,
		TransactionFee:   p.TransactionFee.String(),
		PaymentMode:      p.PaymentMode,
		CreateTime:       formatTime(p.CreateTime),
		UpdateTime:       formatTime(p.UpdateTime),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:               it.ID,
		PaypalPaymentID:  it.PaypalPaymentID,
		Intent:           it.Intent,
		State:            it.State,
		Cart:             it.Cart,
		PaymentMethod:    it.PaymentMethod,
		PayerStatus:      it.PayerStatus,
		PayerID:          it.PayerID,
		PayerEmail:       it.PayerEmail,
		PayerFirstName:   it.PayerFirstName,
		PayerLastName:    it.PayerLastName,
		Currency:         it.Currency,
		TotalAmount:      parseDecimal(it.TotalAmount),
		TransactionID:    it.TransactionID,
		TransactionState: it.TransactionState,
		TransactionFee:   parseDecimal(it.TransactionFee),
		PaymentMode:      it.PaymentMode,
		CreateTime:       parseTime(it.CreateTime),
		UpdateTime:       parseTime(it.UpdateTime),
	}
}
