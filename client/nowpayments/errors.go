package nowpayments

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Local validation errors. Each one fires before any request is sent.
var (
	ErrNonPositiveAmount         = errors.New("amount must be greater than 0")
	ErrUnsupportedFiat           = errors.New("unsupported fiat currency")
	ErrUnsupportedCryptocurrency = errors.New("unsupported cryptocurrency")
	ErrMissingCredentials        = errors.New("email and password are missing")
	ErrMissingIpnSecret          = errors.New("ipn secret is missing")
	ErrMissingCurrency           = errors.New("currency_from and currency_to are required")
	ErrLimitOutOfRange           = errors.New("limit must be a number between 1 and 500")
	ErrNegativePage              = errors.New("page number must be equal or greater than 0")
	ErrInvalidSortField          = errors.New("invalid sort parameter")
	ErrInvalidSortOrder          = errors.New("invalid order parameter")
	ErrInvalidPaymentId          = errors.New("payment id must be greater than zero")
	ErrInvalidInvoiceId          = errors.New("invoice id must be greater than zero")
)

// APIError carries a non-2xx gateway response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nowpayments: %d: %s", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body string) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil || payload.Message == "" {
		payload.Message = "no description"
	}
	return &APIError{StatusCode: statusCode, Message: payload.Message}
}
