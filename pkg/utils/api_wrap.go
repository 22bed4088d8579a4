package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		OK:      true,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// RespondSoftFail acknowledges with HTTP 200 but ok:false. Used by the
// webhook route when no matching record exists, so the gateway does not
// keep retrying a callback this system cannot reconcile.
func RespondSoftFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{
		OK:      false,
		Message: message,
		TraceID: traceID(c),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		OK:      false,
		Error:   message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var gwErr *GatewayError

	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTransactionNotFound):
		RespondError(c, http.StatusNotFound, "Transaction not found")
	case errors.As(err, &gwErr):
		log.Printf("Gateway error: %v", err)
		RespondError(c, http.StatusInternalServerError, gwErr.Error())
	case errors.Is(err, ErrGatewayProtocol):
		log.Printf("Gateway protocol error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrRecordStore):
		log.Printf("Record store error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrSMSGateway):
		log.Printf("SMS gateway error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
