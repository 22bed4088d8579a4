package record_models

// Statuses the relay itself writes. The webhook can additionally pass any
// raw gateway status string through unchanged.
const (
	StatusInitiated = "Initiated"
	StatusPending   = "Pending"
	StatusFailed    = "Failed"
	StatusUnknown   = "Unknown"
)

// Transaction is one row in the hosted table, one per checkout attempt.
// RowID is assigned by the store and is only needed to address updates;
// OrderID is the application-generated join key across the gateway, the
// store and the confirmation SMS.
type Transaction struct {
	RowID           int64
	OrderID         string
	Phone           string
	Email           string
	Recipient       string
	DataPlan        string
	Amount          float64
	Status          string
	GatewayResponse string
	SMSResponse     string
	SMSSent         bool
	Notes           string
}

// Column names in the hosted table.
const (
	FieldOrderID         = "order_id"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldRecipient       = "recipient"
	FieldDataPlan        = "data_plan"
	FieldAmount          = "amount"
	FieldStatus          = "status"
	FieldGatewayResponse = "gateway_response"
	FieldSMSResponse     = "sms_response"
	FieldSMSSent         = "sms_sent"
	FieldNotes           = "notes"
)
