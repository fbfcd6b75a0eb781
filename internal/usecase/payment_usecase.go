package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrGateway                = errors.New("payment gateway error")
	ErrMapping                = errors.New("payment mapping error")
	ErrStore                  = errors.New("payment store error")
	ErrPaymentNotApproved     = errors.New("payment not approved")
	ErrApprovalURLNotFound    = errors.New("approval url not found")
	ErrPaymentRecordNotFound  = errors.New("payment record not found")
	ErrInvalidPaymentRecordID = errors.New("invalid payment record id")
)

// CreatePaymentCommand is the use case input for a new checkout.
type CreatePaymentCommand struct {
	Method      string
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// ConfirmResult is the outcome of ExecuteAndPersist. Record is only set
// when Approved is true.
type ConfirmResult struct {
	Payment  entities.GatewayPayment
	Record   entities.PaymentRecord
	Approved bool
}

// IPaymentUseCase orchestrates the gateway and the record store.
//
// Flow:
//   - CreatePayment: build a sale and hand it to the gateway, the payer then
//     approves it through the approval link.
//   - ExecuteAndPersist: execute the approved payment and store a record when
//     the gateway reports it approved.

type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (entities.GatewayPayment, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (entities.GatewayPayment, error)
	Persist(ctx context.Context, payment entities.GatewayPayment) (entities.PaymentRecord, error)
	ExecuteAndPersist(ctx context.Context, paymentID, payerID string) (ConfirmResult, error)
	GetRecord(ctx context.Context, id string) (entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	gateway      interfaces.IPaymentGateway
	repo         interfaces.IPaymentRecordRepository
	publisher    interfaces.IEventPublisher
	redirectURLs entities.RedirectURLs
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the use case. publisher may be nil.
func NewPaymentUseCase(gateway interfaces.IPaymentGateway, repo interfaces.IPaymentRecordRepository, publisher interfaces.IEventPublisher, redirectURLs entities.RedirectURLs) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, repo: repo, publisher: publisher, redirectURLs: redirectURLs}
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (entities.GatewayPayment, error) {
	log.Printf("[payment][usecase] create start method=%s currency=%s amount=%s", cmd.Method, cmd.Currency, cmd.Amount.String())
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.GatewayPayment{}, fmt.Errorf("%w: gateway not configured", ErrGateway)
	}

	redirect := u.redirectURLs
	payment := entities.GatewayPayment{
		Intent: entities.PaymentIntentSale,
		Payer:  &entities.Payer{PaymentMethod: cmd.Method},
		Transactions: []entities.Transaction{{
			Amount: entities.Amount{
				Currency: cmd.Currency,
				Total:    FormatTotal(cmd.Amount),
			},
			Description: cmd.Description,
		}},
		RedirectURLs: &redirect,
	}

	created, err := u.gateway.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] gateway create failed err=%v", err)
		return entities.GatewayPayment{}, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	log.Printf("[payment][usecase] create success payment_id=%s state=%s", created.ID, created.State)
	return created, nil
}

func (u *PaymentUseCase) ExecutePayment(ctx context.Context, paymentID, payerID string) (entities.GatewayPayment, error) {
	log.Printf("[payment][usecase] execute start payment_id=%s payer_id=%s", paymentID, payerID)
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.GatewayPayment{}, fmt.Errorf("%w: gateway not configured", ErrGateway)
	}

	executed, err := u.gateway.Execute(ctx, paymentID, payerID)
	if err != nil {
		log.Printf("[payment][usecase] gateway execute failed payment_id=%s err=%v", paymentID, err)
		return entities.GatewayPayment{}, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	log.Printf("[payment][usecase] execute success payment_id=%s state=%s", executed.ID, executed.State)
	return executed, nil
}

func (u *PaymentUseCase) Persist(ctx context.Context, payment entities.GatewayPayment) (entities.PaymentRecord, error) {
	if !payment.IsApproved() {
		log.Printf("[payment][usecase] refusing to persist payment_id=%s state=%s", payment.ID, payment.State)
		return entities.PaymentRecord{}, ErrPaymentNotApproved
	}

	valid, err := payment.Validate()
	if err != nil {
		log.Printf("[payment][usecase] gateway payment rejected payment_id=%s err=%v", payment.ID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %w", ErrMapping, err)
	}
	record, err := entities.NewPaymentRecord(valid)
	if err != nil {
		log.Printf("[payment][usecase] record mapping failed payment_id=%s err=%v", payment.ID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %w", ErrMapping, err)
	}

	if u.repo == nil {
		log.Printf("[payment][usecase] record repository not configured")
		return entities.PaymentRecord{}, fmt.Errorf("%w: repository not configured", ErrStore)
	}
	saved, err := u.repo.Save(ctx, record)
	if err != nil {
		log.Printf("[payment][usecase] record save failed payment_id=%s err=%v", payment.ID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	log.Printf("[payment][usecase] record saved id=%s payment_id=%s transaction_id=%s", saved.ID, saved.PaypalPaymentID, saved.TransactionID)

	if u.publisher != nil {
		if err := u.publisher.PublishPaymentRecorded(ctx, saved); err != nil {
			log.Printf("[payment][usecase] publish payment recorded failed id=%s err=%v", saved.ID, err)
		}
	}
	return saved, nil
}

func (u *PaymentUseCase) ExecuteAndPersist(ctx context.Context, paymentID, payerID string) (ConfirmResult, error) {
	executed, err := u.ExecutePayment(ctx, paymentID, payerID)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !executed.IsApproved() {
		log.Printf("[payment][usecase] payment not approved payment_id=%s state=%s", executed.ID, executed.State)
		return ConfirmResult{Payment: executed}, nil
	}

	record, err := u.Persist(ctx, executed)
	if err != nil {
		return ConfirmResult{}, err
	}
	return ConfirmResult{Payment: executed, Record: record, Approved: true}, nil
}

func (u *PaymentUseCase) GetRecord(ctx context.Context, id string) (entities.PaymentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentRecordID
	}
	if u.repo == nil {
		log.Printf("[payment][usecase] record repository not configured")
		return entities.PaymentRecord{}, fmt.Errorf("%w: repository not configured", ErrStore)
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if r.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return r, nil
}

// FormatTotal renders an amount with exactly two fraction digits, rounding
// half away from zero, with '.' as the decimal separator.
func FormatTotal(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// ApprovalURL picks the payer approval link out of a created payment.
func ApprovalURL(payment entities.GatewayPayment) (string, error) {
	url, ok := payment.ApprovalURL()
	if !ok {
		return "", fmt.Errorf("%w: payment_id=%s", ErrApprovalURLNotFound, payment.ID)
	}
	return url, nil
}
