package checkout_fx

import (
	"go.uber.org/fx"

	"bundlepay/internal/api/controllers"
	"bundlepay/internal/repositories"
	"bundlepay/internal/services"
)

var Module = fx.Provide(
	provideCheckoutService,
	provideCheckoutController,
	controllers.NewHealthController,
)

func provideCheckoutService(
	repo repositories.TransactionRepositoryInterface,
	gateway services.IGatewayService,
	sms services.ISMSService,
) services.CheckoutService {
	return services.NewCheckoutService(repo, gateway, sms)
}

func provideCheckoutController(checkoutService services.CheckoutService) *controllers.CheckoutController {
	return controllers.NewCheckoutController(checkoutService)
}
