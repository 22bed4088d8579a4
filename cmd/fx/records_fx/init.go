package records_fx

import (
	"go.uber.org/fx"

	"bundlepay/internal/infra"
	"bundlepay/internal/repositories"
)

var Module = fx.Provide(provideTransactionRepository)

func provideTransactionRepository(cfg *infra.Config) repositories.TransactionRepositoryInterface {
	return repositories.NewTransactionRepository(cfg)
}
