package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bundlepay/internal/infra"
	"bundlepay/pkg/utils"
)

const (
	deliveryWindowExpress = "5 to 30 minutes"
	deliveryWindowNormal  = "30 minutes to 4 hours"
)

type ISMSService interface {
	// SendConfirmation sends the payment-received SMS and returns the raw
	// gateway response body for the record snapshot.
	SendConfirmation(ctx context.Context, to, dataPlan, recipient, orderID string) (string, error)
}

func NewSMSService(cfg *infra.Config) ISMSService {
	return &smsService{
		cfg:    cfg.SMS,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type smsService struct {
	cfg    infra.SMSConfig
	client *http.Client
}

// DeliveryWindow picks the estimate quoted in the confirmation SMS. Express
// plans carry the literal tag "(Express)" in their label.
func DeliveryWindow(dataPlan string) string {
	if strings.Contains(dataPlan, "(Express)") {
		return deliveryWindowExpress
	}
	return deliveryWindowNormal
}

func ConfirmationMessage(dataPlan, recipient, orderID string) string {
	return fmt.Sprintf(
		"Payment received for %s to %s. Order %s. Your bundle will be delivered within %s.",
		dataPlan, recipient, orderID, DeliveryWindow(dataPlan),
	)
}

func (s *smsService) SendConfirmation(ctx context.Context, to, dataPlan, recipient, orderID string) (string, error) {
	query := url.Values{}
	query.Set("clientid", s.cfg.ClientID)
	query.Set("clientsecret", s.cfg.ClientSecret)
	query.Set("from", s.cfg.SenderID)
	query.Set("to", to)
	query.Set("content", ConfirmationMessage(dataPlan, recipient, orderID))

	endpoint := s.cfg.BaseURL + "/v1/messages/send?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrSMSGateway, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrSMSGateway, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: send returned %d: %s", utils.ErrSMSGateway, resp.StatusCode, raw)
	}

	return string(raw), nil
}
