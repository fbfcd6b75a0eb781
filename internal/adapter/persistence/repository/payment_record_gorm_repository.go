package repository

import (
	"context"
	"errors"
	"time"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// paymentRecordRow is the relational shape of a payment record.
type paymentRecordRow struct {
	ID               string `gorm:"primaryKey;type:varchar(36)"`
	PaypalPaymentID  string `gorm:"index"`
	Intent           string
	State            string
	Cart             string
	PaymentMethod    string
	PayerStatus      string
	PayerID          string
	PayerEmail       string
	PayerFirstName   string
	PayerLastName    string
	Currency         string          `gorm:"type:varchar(3)"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(19,2)"`
	TransactionID    string
	TransactionState string
	TransactionFee   decimal.Decimal `gorm:"type:decimal(19,2)"`
	PaymentMode      string
	CreateTime       time.Time
	UpdateTime       time.Time
}

func (paymentRecordRow) TableName() string {
	return "payments"
}

// PaymentRecordGormRepository persists PaymentRecord entities in a relational
// database through GORM.
type PaymentRecordGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordGormRepository)(nil)

func NewPaymentRecordGormRepository(db *gorm.DB) *PaymentRecordGormRepository {
	return &PaymentRecordGormRepository{db: db}
}

// MigratePaymentRecords creates or updates the payments table.
func MigratePaymentRecords(db *gorm.DB) error {
	return db.AutoMigrate(&paymentRecordRow{})
}

func (r *PaymentRecordGormRepository) Save(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	p.ID = uuid.NewString()
	row := toPaymentRecordRow(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordGormRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	var row paymentRecordRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PaymentRecord{}, nil
	}
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordRow(row), nil
}

func toPaymentRecordRow(p entities.PaymentRecord) paymentRecordRow {
	return paymentRecordRow{
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
		TotalAmount:      p.TotalAmount,
		TransactionID:    p.TransactionID,
		TransactionState: p.TransactionState,
		TransactionFee:   p.TransactionFee,
		PaymentMode:      p.PaymentMode,
		CreateTime:       p.CreateTime.UTC(),
		UpdateTime:       p.UpdateTime.UTC(),
	}
}

func fromPaymentRecordRow(row paymentRecordRow) entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:               row.ID,
		PaypalPaymentID:  row.PaypalPaymentID,
		Intent:           row.Intent,
		State:            row.State,
		Cart:             row.Cart,
		PaymentMethod:    row.PaymentMethod,
		PayerStatus:      row.PayerStatus,
		PayerID:          row.PayerID,
		PayerEmail:       row.PayerEmail,
		PayerFirstName:   row.PayerFirstName,
		PayerLastName:    row.PayerLastName,
		Currency:         row.Currency,
		TotalAmount:      row.TotalAmount,
		TransactionID:    row.TransactionID,
		TransactionState: row.TransactionState,
		TransactionFee:   row.TransactionFee,
		PaymentMode:      row.PaymentMode,
		CreateTime:       row.CreateTime,
		UpdateTime:       row.UpdateTime,
	}
}
