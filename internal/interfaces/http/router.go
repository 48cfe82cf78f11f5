package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/application/reports"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	LocationUC  *usecase.LocationUseCase
	LedgerUC    *ledger.UseCase
	DashboardUC *reports.DashboardUseCase
	PDFUC       *reports.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Seed y ubicaciones (protegido; el seed es solo para managers)
	locationHandler := NewLocationHandler(deps.LocationUC)
	protected.Post("/seed", RequireRole(entity.RoleManager), locationHandler.Seed)
	protected.Get("/locations", locationHandler.List)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Moves (protegido): motor del ledger + historial
	moves := protected.Group("/moves")
	moveHandler := NewMoveHandler(deps.LedgerUC, deps.DashboardUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.PDFUC)
	moves.Post("/", moveHandler.Create)
	moves.Post("/adjustment", moveHandler.Adjustment)
	moves.Get("/history", moveHandler.History)
	moves.Get("/history/pdf", dashboardHandler.HistoryPDF)

	// Dashboard (protegido)
	protected.Get("/dashboard", dashboardHandler.Get)
}
