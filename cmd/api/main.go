package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/application/reports"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/stockmaster-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	otpRepo := postgres.NewOTPRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewUseCase(txRunner, productRepo, locationRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, decimal.NewFromInt(int64(cfg.Ledger.LowStockThreshold)))
	pdfUC := reports.NewPDFUseCase(reportRepo, infrapdf.NewMarotoPDFGenerator())
	authUC := auth.NewAuthUseCase(userRepo, otpRepo, notify.NewLogNotifier(log.Zerolog()), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMaster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Ledger.EnableMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		LocationUC:  locationUC,
		LedgerUC:    ledgerUC,
		DashboardUC: dashboardUC,
		PDFUC:       pdfUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
