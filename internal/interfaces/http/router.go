package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/alerting"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/status"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *catalog.UseCase
	LedgerUC  *ledger.UseCase
	HistoryUC *ledger.HistoryUseCase
	StatusUC  *status.UseCase
	AlertUC   *alerting.UseCase
	ReportUC  *report.UseCase
	UserUC    *usecase.UserUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CatalogUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Items (ficha de materiales)
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/search", itemHandler.Search)

	// Ledger de stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC, deps.HistoryUC, deps.StatusUC)
	stock.Post("/receipts", stockHandler.Receive)
	stock.Get("/receipts", stockHandler.ListReceipts)
	stock.Post("/issues", stockHandler.Issue)
	stock.Get("/issues", stockHandler.ListIssues)
	stock.Get("/items/:id/current", stockHandler.CurrentStock)

	// Estado de inventario
	statusHandler := NewStatusHandler(deps.StatusUC)
	api.Get("/status", statusHandler.Search)

	// Alertas
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/summary", alertHandler.Summary)
	alerts.Post("/check", alertHandler.Check)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/status.pdf", reportHandler.StatusPDF)
	reports.Get("/ledger.xml", reportHandler.LedgerXML)

	// Operadores
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
}
