// Command server runs the bank record-keeping service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blueharvest/bank/config"
	"github.com/blueharvest/bank/infra/initializer"
	infrarepo "github.com/blueharvest/bank/infra/repository"
	accountsvc "github.com/blueharvest/bank/pkg/service/account"
	customersvc "github.com/blueharvest/bank/pkg/service/customer"
	transactionsvc "github.com/blueharvest/bank/pkg/service/transaction"
	"github.com/blueharvest/bank/webapi"
)

func main() {
	cfg, err := config.LoadAppConfig(slog.Default())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := initializer.SetupLogger(&cfg.Log)

	db, err := infrarepo.NewDBConnection(cfg.DB.Url)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	uow := infrarepo.NewUoW(db)

	app := webapi.New(webapi.Deps{
		Customers:    customersvc.NewService(uow, logger),
		Accounts:     accountsvc.NewService(uow, logger),
		Transactions: transactionsvc.NewService(uow, logger),
		Cfg:          cfg,
		Logger:       logger,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Env)
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
