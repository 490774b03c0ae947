package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-api/internal/application/alerting"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/status"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	statusUC := status.New(statusRepo, balanceRepo)
	alertUC := alerting.New(statusUC)
	ledgerUC := ledger.New(txRunner, itemRepo, alertUC)
	historyUC := ledger.NewHistory(txRepo)
	catalogUC := catalog.New(categoryRepo, itemRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name, cfg.App.CurrencyPrefix)
	ledgerExporter := xmlexport.NewLedgerExporter(cfg.App.Name)
	reportUC := report.New(statusUC, historyUC, itemRepo, pdfGenerator, ledgerExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		LedgerUC:  ledgerUC,
		HistoryUC: historyUC,
		StatusUC:  statusUC,
		AlertUC:   alertUC,
		ReportUC:  reportUC,
		UserUC:    userUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
