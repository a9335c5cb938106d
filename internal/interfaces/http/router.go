package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercial-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	PriceUC     *usecase.PriceUseCase
	EnrichUC    *usecase.PriceEnrichmentUseCase
	ReportUC    *usecase.PriceReportUseCase
	DirectoryUC *usecase.DirectoryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todas las rutas de negocio requieren
// Bearer Token; el borrado físico de tarifas exige además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Árbol de categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/paths", categoryHandler.AllPaths)
	categories.Get("/top", categoryHandler.ListTop)
	categories.Get("/middle/:topId", categoryHandler.ListMiddle)
	categories.Get("/low/:topId/:middleId", categoryHandler.ListLow)
	categories.Get("/", categoryHandler.ListAll)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id/path", categoryHandler.Path)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Ventanas de tarifa
	prices := api.Group("/prices")
	priceHandler := NewPriceHandler(deps.PriceUC, deps.EnrichUC, deps.ReportUC)
	prices.Post("/bulk", priceHandler.Upsert)
	prices.Put("/status", priceHandler.SetStatus)
	prices.Get("/customer-product", priceHandler.History)
	prices.Post("/check-overlap", priceHandler.CheckOverlap)
	prices.Get("/report/pdf", priceHandler.ReportPDF)
	prices.Get("/", priceHandler.List)
	prices.Delete("/:id", RequireRole(RoleAdmin), priceHandler.HardDelete)

	// Directorio de clientes y catálogo de productos (solo lectura)
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	customers := api.Group("/customers")
	customers.Get("/", directoryHandler.ListCustomers)
	customers.Get("/:id", directoryHandler.GetCustomer)
	products := api.Group("/products")
	products.Get("/", directoryHandler.ListProducts)
	products.Get("/:code", directoryHandler.GetProduct)
}
