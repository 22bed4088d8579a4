package request_models

import "encoding/json"

type StartCheckoutRequest struct {
	Email     string  `json:"email"`
	Phone     string  `json:"phone" binding:"required"`
	Recipient string  `json:"recipient" binding:"required"`
	DataPlan  string  `json:"dataPlan" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Network   string  `json:"network" binding:"required"`
}

// PaymentWebhookRequest is the gateway's callback body. Amount is bound as
// json.Number because the gateway sends it as a number or a quoted string
// depending on channel.
type PaymentWebhookRequest struct {
	Amount        json.Number `json:"amount" binding:"required"`
	Status        string      `json:"status" binding:"required"`
	TransactionID string      `json:"transaction_id" binding:"required"`
	PhoneNumber   string      `json:"phone_number" binding:"required"`
}
