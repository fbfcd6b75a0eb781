package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	request "paypal_checkout/internal/adapter/http/dto/request"
	response "paypal_checkout/internal/adapter/http/dto/response"
	"paypal_checkout/internal/usecase"
	"paypal_checkout/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	MessagePaymentCreationFailed = "Payment creation failed."
	MessagePaymentCanceled       = "Payment canceled by the user."
	MessagePaymentError          = "An error occurred during the payment process."
)

// Callback parameter names. PayPal returns paymentId and PayerID; Mercado
// Pago returns payment_id (and collection_id) and has no payer id.
var callbackPaymentIDKeys = []string{"paymentId", "payment_id", "collection_id"}

const callbackPayerIDKey = "PayerID"

// PaymentHandler exposes the checkout flow over HTTP.

type PaymentHandler struct {
	usecase            usecase.IPaymentUseCase
	frontendSuccessURL string
	payerIDRequired    bool
}

// NewPaymentHandler builds the handler. payerIDRequired is false for gateways
// whose return query carries no payer id.
func NewPaymentHandler(uc usecase.IPaymentUseCase, frontendSuccessURL string, payerIDRequired bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, frontendSuccessURL: frontendSuccessURL, payerIDRequired: payerIDRequired}
}

// CreatePayment godoc
// @Summary      Create a payment
// @Description  Creates a pending sale at the gateway and returns the payer approval URL as plain text.
// @Tags         payment
// @Accept       json
// @Produce      plain
// @Param        payment  body      request.PaymentCreationRequest  true  "Payment"
// @Success      200      {string}  string  "approval URL"
// @Failure      500      {string}  string  "Payment creation failed."
// @Router       /payment/create [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		c.String(http.StatusInternalServerError, MessagePaymentCreationFailed)
		return
	}
	cmd := payload.ToCommand()
	log.Printf("[payment][handler] create start method=%s currency=%s", cmd.Method, cmd.Currency)

	created, err := h.usecase.CreatePayment(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		c.String(http.StatusInternalServerError, MessagePaymentCreationFailed)
		return
	}

	approvalURL, err := usecase.ApprovalURL(created)
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		c.String(http.StatusInternalServerError, MessagePaymentCreationFailed)
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s", created.ID)

	c.String(http.StatusOK, approvalURL)
}

// ConfirmPayment godoc
// @Summary      Execute and record an approved payment
// @Tags         payment
// @Produce      json
// @Param        paymentId  query     string  true   "Gateway payment id (payment_id is accepted too)"
// @Param        PayerID    query     string  false  "Payer id from the approval callback, required by PayPal"
// @Success      200        {object}  response.PaymentResponse
// @Failure      400        {object}  response.PaymentResponse
// @Failure      500        {object}  response.PaymentResponse
// @Router       /payment/success [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	paymentID := firstQueryOrForm(c, callbackPaymentIDKeys...)
	payerID := firstQueryOrForm(c, callbackPayerIDKey)
	if paymentID == "" || (h.payerIDRequired && payerID == "") {
		log.Printf("[payment][handler] confirm missing parameters payment_id=%q payer_id=%q", paymentID, payerID)
		c.JSON(http.StatusBadRequest, response.Failure(response.MessageMissingParameters))
		return
	}
	log.Printf("[payment][handler] confirm start payment_id=%s payer_id=%s", paymentID, payerID)

	result, err := h.usecase.ExecuteAndPersist(c.Request.Context(), paymentID, payerID)
	if err != nil {
		log.Printf("[payment][handler] confirm failed payment_id=%s err=%v", paymentID, err)
		c.JSON(http.StatusInternalServerError, response.Failure(response.MessagePaymentFailed))
		return
	}
	if !result.Approved {
		log.Printf("[payment][handler] confirm not approved payment_id=%s state=%s", paymentID, result.Payment.State)
		c.JSON(http.StatusOK, response.Failure(response.MessagePaymentNotApproved))
		return
	}
	log.Printf("[payment][handler] confirm success payment_id=%s record_id=%s", paymentID, result.Record.ID)

	c.JSON(http.StatusOK, response.Success(response.MessagePaymentSaved))
}

// SuccessRedirect forwards the payer back to the front end with the ids the
// gateway appended to the return URL. The ids are passed through untouched.
func (h *PaymentHandler) SuccessRedirect(c *gin.Context) {
	var paymentID string
	for _, key := range callbackPaymentIDKeys {
		if paymentID = c.Query(key); paymentID != "" {
			break
		}
	}
	payerID := c.Query(callbackPayerIDKey)
	log.Printf("[payment][handler] success redirect payment_id=%s token=%s payer_id=%s", paymentID, c.Query("token"), payerID)

	location := fmt.Sprintf("%s?paymentId=%s&PayerID=%s", h.frontendSuccessURL, paymentID, payerID)
	c.Header("Location", location)
	c.Status(http.StatusSeeOther)
}

func (h *PaymentHandler) Cancel(c *gin.Context) {
	c.String(http.StatusOK, MessagePaymentCanceled)
}

func (h *PaymentHandler) Error(c *gin.Context) {
	c.String(http.StatusOK, MessagePaymentError)
}

// GetRecord godoc
// @Summary      Get a stored payment record
// @Tags         payment
// @Produce      json
// @Param        id   path      string  true  "Record id"
// @Success      200  {object}  response.PaymentRecordResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /payment/records/{id} [get]
func (h *PaymentHandler) GetRecord(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] get-record start id=%s", id)

	record, err := h.usecase.GetRecord(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get-record failed id=%s err=%v", id, err)
		appErr := mapPaymentRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(record))
}

// firstQueryOrForm returns the first non-empty value among keys, looking at
// the query string before the form body.
func firstQueryOrForm(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			return v
		}
	}
	for _, key := range keys {
		if v := strings.TrimSpace(c.PostForm(key)); v != "" {
			return v
		}
	}
	return ""
}

func mapPaymentRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_RECORD_NOT_FOUND", "Payment record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
