package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bundlepay/internal/infra"
	"bundlepay/internal/models/record_models"
)

// TransactionRepositoryInterface wraps the hosted table that is the system
// of record for checkout attempts. All state lives there; this process
// keeps nothing in memory between requests.
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, txn *record_models.Transaction) error
	FindByOrderID(ctx context.Context, orderID string) (*record_models.Transaction, error)
	Update(ctx context.Context, rowID int64, fields map[string]interface{}) error
}

func NewTransactionRepository(cfg *infra.Config) TransactionRepositoryInterface {
	return &TransactionRepository{
		cfg:    cfg.Records,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type TransactionRepository struct {
	cfg    infra.RecordStoreConfig
	client *http.Client
}

func (r *TransactionRepository) recordsURL() string {
	return fmt.Sprintf("%s/api/v2/tables/%s/records", r.cfg.BaseURL, r.cfg.TableID)
}

func (r *TransactionRepository) Create(ctx context.Context, txn *record_models.Transaction) error {
	body := map[string]interface{}{
		record_models.FieldOrderID:         txn.OrderID,
		record_models.FieldPhone:           txn.Phone,
		record_models.FieldEmail:           txn.Email,
		record_models.FieldRecipient:       txn.Recipient,
		record_models.FieldDataPlan:        txn.DataPlan,
		record_models.FieldAmount:          txn.Amount,
		record_models.FieldStatus:          txn.Status,
		record_models.FieldGatewayResponse: txn.GatewayResponse,
	}

	row, err := r.do(ctx, http.MethodPost, r.recordsURL(), body)
	if err != nil {
		return err
	}

	if id, ok := row["Id"].(float64); ok {
		txn.RowID = int64(id)
	}
	return nil
}

func (r *TransactionRepository) FindByOrderID(ctx context.Context, orderID string) (*record_models.Transaction, error) {
	query := url.Values{}
	query.Set("where", fmt.Sprintf("(%s,eq,%s)", record_models.FieldOrderID, orderID))
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.recordsURL()+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xc-token", r.cfg.Token)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("record store query returned %d: %s", resp.StatusCode, raw)
	}

	var page struct {
		List []map[string]interface{} `json:"list"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	if len(page.List) == 0 {
		return nil, nil
	}

	return rowToTransaction(page.List[0]), nil
}

func (r *TransactionRepository) Update(ctx context.Context, rowID int64, fields map[string]interface{}) error {
	body := map[string]interface{}{"Id": rowID}
	for k, v := range fields {
		body[k] = v
	}

	_, err := r.do(ctx, http.MethodPatch, r.recordsURL(), body)
	return err
}

func (r *TransactionRepository) do(ctx context.Context, method, endpoint string, body map[string]interface{}) (map[string]interface{}, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xc-token", r.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("record store %s returned %d: %s", method, resp.StatusCode, raw)
	}

	var row map[string]interface{}
	if err := json.Unmarshal(raw, &row); err != nil {
		// Some mutations return an array of touched rows instead.
		var rows []map[string]interface{}
		if err2 := json.Unmarshal(raw, &rows); err2 == nil && len(rows) > 0 {
			return rows[0], nil
		}
		return nil, err
	}
	return row, nil
}

func rowToTransaction(row map[string]interface{}) *record_models.Transaction {
	txn := &record_models.Transaction{
		OrderID:         stringField(row, record_models.FieldOrderID),
		Phone:           stringField(row, record_models.FieldPhone),
		Email:           stringField(row, record_models.FieldEmail),
		Recipient:       stringField(row, record_models.FieldRecipient),
		DataPlan:        stringField(row, record_models.FieldDataPlan),
		Status:          normalizeStatus(row[record_models.FieldStatus]),
		GatewayResponse: stringField(row, record_models.FieldGatewayResponse),
		SMSResponse:     stringField(row, record_models.FieldSMSResponse),
		Notes:           stringField(row, record_models.FieldNotes),
	}

	if id, ok := row["Id"].(float64); ok {
		txn.RowID = int64(id)
	}
	if amount, ok := row[record_models.FieldAmount].(float64); ok {
		txn.Amount = amount
	}
	if sent, ok := row[record_models.FieldSMSSent].(bool); ok {
		txn.SMSSent = sent
	}

	return txn
}

func stringField(row map[string]interface{}, key string) string {
	s, _ := row[key].(string)
	return s
}

// normalizeStatus collapses the two shapes the hosted table serves for a
// select column: a plain string value, or a labeled option object like
// {"label":"Pending"}. The coordinator only ever sees the flat string.
func normalizeStatus(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case map[string]interface{}:
		if label, ok := s["label"].(string); ok {
			return label
		}
	}
	return record_models.StatusUnknown
}
