package utils

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrGatewayProtocol     = errors.New("gateway response missing transaction id")
	ErrRecordStore         = errors.New("record store error")
	ErrSMSGateway          = errors.New("sms gateway error")
)

// GatewayError carries the upstream payment-gateway message so it can be
// embedded in the 500 response to the caller.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %s", e.Message)
}
