package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bundlepay/internal/infra"
	"bundlepay/pkg/utils"
)

type InitiatePaymentRequest struct {
	Amount    float64
	Phone     string
	Network   string
	Reference string
}

// InitiatePaymentResult carries the gateway-assigned transaction id and the
// raw response body, which is snapshotted onto the record for audit.
type InitiatePaymentResult struct {
	GatewayTxnID string
	RawBody      string
}

type PaymentStatusResult struct {
	Status  string
	RawBody string
}

type IGatewayService interface {
	InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (*InitiatePaymentResult, error)
	CheckPaymentStatus(ctx context.Context, reference string) (*PaymentStatusResult, error)
}

func NewGatewayService(cfg *infra.Config) IGatewayService {
	return &gatewayService{
		cfg: cfg.Gateway,
		// Single attempt with a hard 10s cap; the gateway's own retry
		// behavior is the webhook, not this call.
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type gatewayService struct {
	cfg    infra.GatewayConfig
	client *http.Client
}

type gatewayEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		TransactionID string `json:"transactionId"`
		Status        string `json:"status"`
	} `json:"data"`
}

func (g *gatewayService) InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (*InitiatePaymentResult, error) {
	body := map[string]interface{}{
		"amount":       req.Amount,
		"phone":        req.Phone,
		"network":      req.Network,
		"reference":    req.Reference,
		"callback_url": g.cfg.CallbackURL,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/payments/initiate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("api-key", g.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, &utils.GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &utils.GatewayError{Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &utils.GatewayError{Message: fmt.Sprintf("initiate returned %d: %s", resp.StatusCode, raw)}
	}

	var envelope gatewayEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &utils.GatewayError{Message: fmt.Sprintf("unparseable initiate response: %s", raw)}
	}
	if envelope.Data.TransactionID == "" {
		return nil, utils.ErrGatewayProtocol
	}

	return &InitiatePaymentResult{
		GatewayTxnID: envelope.Data.TransactionID,
		RawBody:      string(raw),
	}, nil
}

func (g *gatewayService) CheckPaymentStatus(ctx context.Context, reference string) (*PaymentStatusResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+"/payments/status/"+reference, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("api-key", g.cfg.APIKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, &utils.GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &utils.GatewayError{Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &utils.GatewayError{Message: fmt.Sprintf("status check returned %d: %s", resp.StatusCode, raw)}
	}

	var envelope gatewayEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &utils.GatewayError{Message: fmt.Sprintf("unparseable status response: %s", raw)}
	}

	status := envelope.Data.Status
	if status == "" {
		status = envelope.Status
	}

	return &PaymentStatusResult{Status: status, RawBody: string(raw)}, nil
}
