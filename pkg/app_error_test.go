package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred (dynamodb down)" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("PAYMENT_RECORD_NOT_FOUND", "Payment record not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "PAYMENT_RECORD_NOT_FOUND: Payment record not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
