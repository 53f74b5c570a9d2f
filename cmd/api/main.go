package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sarismart/retail-api/internal/application/auth"
	"github.com/sarismart/retail-api/internal/application/usecase"
	"github.com/sarismart/retail-api/internal/infrastructure/postgres"
	"github.com/sarismart/retail-api/internal/infrastructure/supabase"
	httpRouter "github.com/sarismart/retail-api/internal/interfaces/http"
	"github.com/sarismart/retail-api/pkg/config"
	"github.com/sarismart/retail-api/pkg/logger"
	"github.com/sarismart/retail-api/pkg/token"
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

	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	adjustmentRepo := postgres.NewStockAdjustmentRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	identity := supabase.NewClient(cfg.Supabase)
	authUC := auth.NewAuthUseCase(userRepo, identity)
	storeUC := usecase.NewStoreUseCase(storeRepo, userRepo)
	inventoryUC := usecase.NewInventoryUseCase(
		storeRepo, productRepo, adjustmentRepo, txRunner,
		cfg.Inventory.AllowNegativeStock,
	)
	salesUC := usecase.NewSalesUseCase(storeRepo, saleRepo)
	cartUC := usecase.NewCartUseCase(storeRepo, userRepo, cartRepo, txRunner)

	// El issuer esperado en los tokens es la misma base de auth del proveedor.
	validator := token.NewValidator(token.Config{
		Secret:   cfg.Supabase.JWTSecret,
		Issuer:   cfg.Supabase.AuthBaseURL(),
		Audience: "authenticated",
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SariSmart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StoreUC:     storeUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		CartUC:      cartUC,
		Validator:   validator,
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
