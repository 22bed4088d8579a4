package infra

import (
	"log"
	"os"
)

// GatewayConfig holds the mobile-money gateway credentials and the callback
// URL the gateway posts payment results back to.
type GatewayConfig struct {
	BaseURL     string
	APIKey      string
	CallbackURL string
}

// RecordStoreConfig points at the hosted table that is the system of record
// for transactions. Token is sent as the xc-token header.
type RecordStoreConfig struct {
	BaseURL string
	Token   string
	TableID string
}

// SMSConfig holds the messaging gateway credentials. The gateway takes
// credentials and content as query parameters on a GET request.
type SMSConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	SenderID     string
}

type Config struct {
	Port    string
	Gateway GatewayConfig
	Records RecordStoreConfig
	SMS     SMSConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port: os.Getenv("PORT"),
		Gateway: GatewayConfig{
			BaseURL:     os.Getenv("PAYGATE_BASE_URL"),
			APIKey:      os.Getenv("PAYGATE_API_KEY"),
			CallbackURL: os.Getenv("PAYGATE_CALLBACK_URL"),
		},
		Records: RecordStoreConfig{
			BaseURL: os.Getenv("NOCODB_BASE_URL"),
			Token:   os.Getenv("NOCODB_API_TOKEN"),
			TableID: os.Getenv("NOCODB_TABLE_ID"),
		},
		SMS: SMSConfig{
			BaseURL:      os.Getenv("SMS_BASE_URL"),
			ClientID:     os.Getenv("SMS_CLIENT_ID"),
			ClientSecret: os.Getenv("SMS_CLIENT_SECRET"),
			SenderID:     os.Getenv("SMS_SENDER_ID"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Gateway.APIKey == "" {
		log.Println("PAYGATE_API_KEY is not set, payment initiation will fail")
	}

	return cfg
}

// EnvFlags reports which credential groups were present at startup without
// exposing their values. Served by the /test route.
func (c *Config) EnvFlags() map[string]bool {
	return map[string]bool{
		"paygate_api_key": c.Gateway.APIKey != "",
		"paygate_base":    c.Gateway.BaseURL != "",
		"records_token":   c.Records.Token != "",
		"records_table":   c.Records.TableID != "",
		"sms_client_id":   c.SMS.ClientID != "",
		"sms_secret":      c.SMS.ClientSecret != "",
	}
}
