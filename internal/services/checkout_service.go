package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"bundlepay/internal/models/record_models"
	"bundlepay/internal/models/request_models"
	"bundlepay/internal/models/response_models"
	"bundlepay/internal/repositories"
	"bundlepay/pkg/utils"
)

// Mobile-money networks the gateway accepts.
var supportedNetworks = []string{"MTN", "Vodafone", "AirtelTigo"}

// CheckoutService coordinates the transaction lifecycle across the payment
// gateway, the hosted table and the SMS gateway. Every operation is a
// single-attempt call-out; nothing is retried here.
type CheckoutService interface {
	StartCheckout(ctx context.Context, req request_models.StartCheckoutRequest) (*response_models.CheckoutResponse, error)
	HandleWebhook(ctx context.Context, req request_models.PaymentWebhookRequest) (*response_models.WebhookResult, error)
	CheckStatus(ctx context.Context, orderID string) (*response_models.StatusResponse, error)
	CancelTransaction(ctx context.Context, orderID string, note string) error
}

func NewCheckoutService(
	repo repositories.TransactionRepositoryInterface,
	gateway IGatewayService,
	sms ISMSService,
) CheckoutService {
	return &checkoutService{
		repo:    repo,
		gateway: gateway,
		sms:     sms,
	}
}

type checkoutService struct {
	repo    repositories.TransactionRepositoryInterface
	gateway IGatewayService
	sms     ISMSService
}

func (s *checkoutService) StartCheckout(ctx context.Context, req request_models.StartCheckoutRequest) (*response_models.CheckoutResponse, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	orderID := utils.GenerateOrderID()

	result, err := s.gateway.InitiatePayment(ctx, InitiatePaymentRequest{
		Amount:    req.Amount,
		Phone:     req.Phone,
		Network:   req.Network,
		Reference: orderID,
	})
	if err != nil {
		// No record is written for a failed initiation.
		return nil, err
	}

	txn := &record_models.Transaction{
		OrderID:         orderID,
		Phone:           req.Phone,
		Email:           req.Email,
		Recipient:       req.Recipient,
		DataPlan:        req.DataPlan,
		Amount:          req.Amount,
		Status:          record_models.StatusInitiated,
		GatewayResponse: result.RawBody,
	}

	// The payment is already in flight at the gateway, so a record-store
	// failure is logged and swallowed rather than failing the checkout.
	// This can desynchronize gateway and store state; there is no
	// reconciliation job.
	if err := s.repo.Create(ctx, txn); err != nil {
		log.Printf("failed to record transaction %s (gateway txn %s): %v", orderID, result.GatewayTxnID, err)
	}

	return &response_models.CheckoutResponse{
		TransactionID: orderID,
		Amount:        req.Amount,
		Phone:         req.Phone,
		Status:        record_models.StatusInitiated,
	}, nil
}

func (s *checkoutService) HandleWebhook(ctx context.Context, req request_models.PaymentWebhookRequest) (*response_models.WebhookResult, error) {
	amount, err := req.Amount.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be numeric", utils.ErrValidation)
	}

	txn, err := s.repo.FindByOrderID(ctx, req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRecordStore, err)
	}
	if txn == nil {
		log.Printf("webhook for unknown order %s, acknowledging to stop retries", req.TransactionID)
		return &response_models.WebhookResult{Found: false, Message: "No matching transaction"}, nil
	}

	orderStatus := req.Status
	if strings.EqualFold(req.Status, "success") {
		orderStatus = record_models.StatusPending
	}

	snapshot, _ := json.Marshal(req)
	update := map[string]interface{}{
		record_models.FieldAmount:          amount,
		record_models.FieldStatus:          orderStatus,
		record_models.FieldGatewayResponse: string(snapshot),
	}
	if err := s.repo.Update(ctx, txn.RowID, update); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRecordStore, err)
	}

	// SMS goes out on every delivery that lands on Pending. Repeated or
	// concurrent webhook deliveries for the same order each re-send it;
	// there is no dedup guard, matching the gateway-facing contract.
	if orderStatus == record_models.StatusPending {
		raw, err := s.sms.SendConfirmation(ctx, txn.Phone, txn.DataPlan, txn.Recipient, txn.OrderID)
		if err != nil {
			return nil, err
		}

		smsUpdate := map[string]interface{}{
			record_models.FieldSMSResponse: raw,
			record_models.FieldSMSSent:     true,
		}
		if err := s.repo.Update(ctx, txn.RowID, smsUpdate); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrRecordStore, err)
		}
	}

	return &response_models.WebhookResult{Found: true, Message: "Transaction updated"}, nil
}

func (s *checkoutService) CheckStatus(ctx context.Context, orderID string) (*response_models.StatusResponse, error) {
	txn, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRecordStore, err)
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	// Served straight from the store; the webhook (or a cancellation) is
	// trusted to have kept it current. No gateway call here.
	return &response_models.StatusResponse{
		TransactionID: txn.OrderID,
		Status:        txn.Status,
	}, nil
}

func (s *checkoutService) CancelTransaction(ctx context.Context, orderID string, note string) error {
	txn, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrRecordStore, err)
	}
	if txn == nil {
		return utils.ErrTransactionNotFound
	}

	if note == "" {
		note = "Cancelled by user"
	}

	// Unconditional: an already-Pending or already-Failed transaction is
	// forced to Failed too. Cancellation never reaches the gateway, so an
	// in-flight payment on the gateway side is unaffected.
	update := map[string]interface{}{
		record_models.FieldStatus: record_models.StatusFailed,
		record_models.FieldNotes:  note,
	}
	if err := s.repo.Update(ctx, txn.RowID, update); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrRecordStore, err)
	}

	return nil
}

func validateCheckout(req request_models.StartCheckoutRequest) error {
	switch {
	case strings.TrimSpace(req.Phone) == "":
		return fmt.Errorf("%w: phone is required", utils.ErrValidation)
	case strings.TrimSpace(req.Recipient) == "":
		return fmt.Errorf("%w: recipient is required", utils.ErrValidation)
	case strings.TrimSpace(req.DataPlan) == "":
		return fmt.Errorf("%w: dataPlan is required", utils.ErrValidation)
	case req.Amount <= 0:
		return fmt.Errorf("%w: amount must be greater than zero", utils.ErrValidation)
	case strings.TrimSpace(req.Network) == "":
		return fmt.Errorf("%w: network is required", utils.ErrValidation)
	}

	for _, network := range supportedNetworks {
		if strings.EqualFold(req.Network, network) {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported network %q", utils.ErrValidation, req.Network)
}
