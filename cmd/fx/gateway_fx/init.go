package gateway_fx

import (
	"go.uber.org/fx"

	"bundlepay/internal/infra"
	"bundlepay/internal/services"
)

var Module = fx.Provide(provideGatewayService)

func provideGatewayService(cfg *infra.Config) services.IGatewayService {
	return services.NewGatewayService(cfg)
}
