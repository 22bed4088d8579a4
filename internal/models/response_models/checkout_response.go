package response_models

type CheckoutResponse struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Phone         string  `json:"phone"`
	Status        string  `json:"status"`
}

type StatusResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// WebhookResult tells the controller whether the callback matched a known
// transaction. An unmatched callback is still acknowledged with HTTP 200 so
// the gateway stops retrying it.
type WebhookResult struct {
	Found   bool
	Message string
}
