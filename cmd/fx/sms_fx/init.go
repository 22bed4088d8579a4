package sms_fx

import (
	"go.uber.org/fx"

	"bundlepay/internal/infra"
	"bundlepay/internal/services"
)

var Module = fx.Provide(provideSMSService)

func provideSMSService(cfg *infra.Config) services.ISMSService {
	return services.NewSMSService(cfg)
}
