package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarismart/retail-api/internal/application/auth"
	"github.com/sarismart/retail-api/internal/application/usecase"
	"github.com/sarismart/retail-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	StoreUC     *usecase.StoreUseCase
	InventoryUC *usecase.InventoryUseCase
	SalesUC     *usecase.SalesUseCase
	CartUC      *usecase.CartUseCase
	Validator   *token.Validator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público; delega al proveedor de identidad)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/user", authHandler.CurrentUser)

	// Lecturas públicas de tiendas
	storeHandler := NewStoreHandler(deps.StoreUC)
	productHandler := NewProductHandler(deps.InventoryUC)
	api.Get("/stores", storeHandler.List)
	api.Get("/stores/nearby", storeHandler.ListNearby)
	api.Get("/stores/owner/:ownerId", storeHandler.ListByOwner)
	api.Get("/stores/worker/:workerId", storeHandler.ListByWorker)
	api.Get("/stores/:id", storeHandler.GetByID)
	api.Get("/stores/:id/workers", storeHandler.ListWorkers)
	api.Get("/stores/:storeId/products", productHandler.List)

	// Rutas protegidas (requieren Bearer token del proveedor)
	protected := api.Group("/", AuthMiddleware(deps.Validator))

	userHandler := NewUserHandler(deps.AuthUC)
	protected.Get("/users/:id", userHandler.GetByID)

	// Tiendas: mutaciones y membresía
	protected.Post("/stores", storeHandler.Create)
	protected.Put("/stores/:id", storeHandler.Update)
	protected.Delete("/stores/:id", storeHandler.Delete)
	protected.Post("/stores/:id/workers/:workerId", storeHandler.AssignWorker)
	protected.Delete("/stores/:id/workers/:workerId", storeHandler.RemoveWorker)

	// Productos e inventario
	protected.Post("/stores/:storeId/products", productHandler.Create)
	protected.Put("/stores/:storeId/products/:productId", productHandler.Update)
	protected.Put("/stores/:storeId/products/:productId/owner", productHandler.UpdateByOwner)
	protected.Delete("/stores/:storeId/products/:productId", productHandler.Delete)
	protected.Patch("/stores/:storeId/products/:productId/stock", productHandler.AdjustStock)
	protected.Get("/stores/:storeId/products/:productId/stock/history", productHandler.ProductStockHistory)
	protected.Put("/stores/:storeId/products/:productId/reorder-level", productHandler.SetReorderLevel)
	protected.Get("/stores/:storeId/stock/history", productHandler.StockHistory)
	protected.Get("/stores/:storeId/inventory", productHandler.InventoryStatus)
	protected.Get("/stores/:storeId/inventory/alerts", productHandler.RestockAlert)

	// Ventas y reportes
	saleHandler := NewSaleHandler(deps.SalesUC)
	protected.Post("/stores/:storeId/transactions/sales", saleHandler.Create)
	protected.Get("/stores/:storeId/transactions/sales", saleHandler.List)
	protected.Get("/stores/:storeId/transactions/sales/:saleId", saleHandler.GetByID)
	protected.Delete("/stores/:storeId/transactions/sales/:saleId", saleHandler.Refund)
	protected.Get("/stores/:storeId/reports/daily", saleHandler.DailyReport)
	protected.Get("/stores/:storeId/reports/monthly", saleHandler.MonthlyReport)

	// Canastas
	cartHandler := NewCartHandler(deps.CartUC)
	protected.Post("/carts", cartHandler.Create)
	protected.Get("/carts/search", cartHandler.Search)
	protected.Get("/carts/store/:storeId", cartHandler.ListByStore)
	protected.Get("/carts/seller/:sellerId", cartHandler.ListBySeller)
}
