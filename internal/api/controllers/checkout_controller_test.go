package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundlepay/internal/api/controllers"
	"bundlepay/internal/models/record_models"
	"bundlepay/internal/models/request_models"
	"bundlepay/internal/models/response_models"
	"bundlepay/internal/services"
	"bundlepay/pkg/middleware"
	"bundlepay/pkg/utils"
)

type stubCheckoutService struct {
	webhookResult *response_models.WebhookResult
	statusErr     error
	status        string
	cancelErr     error
}

func (s *stubCheckoutService) StartCheckout(ctx context.Context, req request_models.StartCheckoutRequest) (*response_models.CheckoutResponse, error) {
	return &response_models.CheckoutResponse{
		TransactionID: "T123",
		Amount:        req.Amount,
		Phone:         req.Phone,
		Status:        record_models.StatusInitiated,
	}, nil
}

func (s *stubCheckoutService) HandleWebhook(ctx context.Context, req request_models.PaymentWebhookRequest) (*response_models.WebhookResult, error) {
	return s.webhookResult, nil
}

func (s *stubCheckoutService) CheckStatus(ctx context.Context, orderID string) (*response_models.StatusResponse, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return &response_models.StatusResponse{TransactionID: orderID, Status: s.status}, nil
}

func (s *stubCheckoutService) CancelTransaction(ctx context.Context, orderID string, note string) error {
	return s.cancelErr
}

func newRouter(svc services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	cc := controllers.NewCheckoutController(svc)
	api := r.Group("/api")
	api.POST("/start-checkout", cc.StartCheckout)
	api.POST("/payment-webhook", cc.PaymentWebhook)
	api.GET("/check-status/:transaction_id", cc.CheckStatus)
	api.POST("/cancel-transaction/:transaction_id", cc.CancelTransaction)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestStartCheckout_MissingFieldsReturn400(t *testing.T) {
	r := newRouter(&stubCheckoutService{})

	rec, envelope := doJSON(t, r, http.MethodPost, "/api/start-checkout", `{"phone":"0551234567"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.OK)
	assert.NotEmpty(t, envelope.Error)
}

func TestStartCheckout_OK(t *testing.T) {
	r := newRouter(&stubCheckoutService{})

	body := `{"phone":"0551234567","recipient":"0551234567","dataPlan":"1GB (Express)","amount":10,"network":"MTN"}`
	rec, envelope := doJSON(t, r, http.MethodPost, "/api/start-checkout", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.OK)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "T123", data["transaction_id"])
	assert.Equal(t, "Initiated", data["status"])
}

func TestPaymentWebhook_UnknownOrderIsSoft200(t *testing.T) {
	r := newRouter(&stubCheckoutService{
		webhookResult: &response_models.WebhookResult{Found: false, Message: "No matching transaction"},
	})

	body := `{"amount":10,"status":"success","transaction_id":"T404","phone_number":"0551234567"}`
	rec, envelope := doJSON(t, r, http.MethodPost, "/api/payment-webhook", body)

	// 200 with ok:false is the deliberate non-retry signal to the gateway.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, envelope.OK)
}

func TestPaymentWebhook_MissingFieldsReturn400(t *testing.T) {
	r := newRouter(&stubCheckoutService{})

	rec, envelope := doJSON(t, r, http.MethodPost, "/api/payment-webhook", `{"status":"success"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.OK)
}

func TestPaymentWebhook_StringAmountAccepted(t *testing.T) {
	r := newRouter(&stubCheckoutService{
		webhookResult: &response_models.WebhookResult{Found: true, Message: "Transaction updated"},
	})

	body := `{"amount":"10.5","status":"success","transaction_id":"T123","phone_number":"0551234567"}`
	rec, envelope := doJSON(t, r, http.MethodPost, "/api/payment-webhook", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.OK)
}

func TestCheckStatus(t *testing.T) {
	r := newRouter(&stubCheckoutService{status: record_models.StatusPending})

	rec, envelope := doJSON(t, r, http.MethodGet, "/api/check-status/T123", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.OK)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Pending", data["status"])
}

func TestCheckStatus_NotFound(t *testing.T) {
	r := newRouter(&stubCheckoutService{statusErr: utils.ErrTransactionNotFound})

	rec, envelope := doJSON(t, r, http.MethodGet, "/api/check-status/T404", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.OK)
}

func TestCancelTransaction(t *testing.T) {
	r := newRouter(&stubCheckoutService{})

	rec, envelope := doJSON(t, r, http.MethodPost, "/api/cancel-transaction/T123", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.OK)
	assert.Equal(t, "Transaction cancelled", envelope.Message)
	assert.NotEmpty(t, envelope.TraceID)
}

func TestCancelTransaction_NotFound(t *testing.T) {
	r := newRouter(&stubCheckoutService{cancelErr: utils.ErrTransactionNotFound})

	rec, envelope := doJSON(t, r, http.MethodPost, "/api/cancel-transaction/T404", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.OK)
}
