package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/FaisalHDT/kasir-app/internal/config"
	authhandler "github.com/FaisalHDT/kasir-app/internal/delivery/http/handler/auth"
	exporthandler "github.com/FaisalHDT/kasir-app/internal/delivery/http/handler/export"
	producthandler "github.com/FaisalHDT/kasir-app/internal/delivery/http/handler/product"
	reporthandler "github.com/FaisalHDT/kasir-app/internal/delivery/http/handler/report"
	salehandler "github.com/FaisalHDT/kasir-app/internal/delivery/http/handler/sale"
	"github.com/FaisalHDT/kasir-app/internal/delivery/middleware"
	"github.com/FaisalHDT/kasir-app/internal/repository/postgres"
	authuc "github.com/FaisalHDT/kasir-app/internal/usecase/auth"
	exportuc "github.com/FaisalHDT/kasir-app/internal/usecase/export"
	productuc "github.com/FaisalHDT/kasir-app/internal/usecase/product"
	reportuc "github.com/FaisalHDT/kasir-app/internal/usecase/report"
	saleuc "github.com/FaisalHDT/kasir-app/internal/usecase/sale"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, db *pgxpool.Pool) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Auth wiring
	employeeRepo := postgres.NewEmployeeRepo(db)
	finder := &employeeFinderAdapter{repo: employeeRepo}
	loginUC := authuc.NewLoginUsecase(finder, cfg.JWTSecret, cfg.JWTExpiresMinutes)
	loginHandler := authhandler.NewLoginHandler(loginUC)

	// Public route
	api.Post("/login", loginHandler.Handle)

	authed := api.Group("", middleware.RequireAuth(middleware.JWTConfig{
		Secret: cfg.JWTSecret,
	}))
	admin := authed.Group("", middleware.RequireAdmin())

	authed.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals("employee_id"),
			"name": c.Locals("employee_name"),
			"role": c.Locals("employee_role"),
		})
	})

	// Products wiring
	productRepo := postgres.NewProductRepo(db)
	productStore := postgres.NewProductStoreAdapter(productRepo)
	productUC := productuc.New(productStore)
	productH := producthandler.New(productUC)

	// Sales wiring
	saleRepo := postgres.NewSaleRepo(db)
	saleStore := postgres.NewSaleStoreAdapter(saleRepo)
	saleUC := saleuc.New(saleStore)
	saleH := salehandler.New(saleUC)

	// Reports wiring
	reportRepo := postgres.NewReportRepo(db)
	reportStore := postgres.NewReportStoreAdapter(reportRepo)
	reportUC := reportuc.New(reportStore)
	reportH := reporthandler.New(reportUC)

	// Export wiring
	exportStore := postgres.NewExportStoreAdapter(employeeRepo, saleRepo)
	exportUC := exportuc.New(exportStore)
	exportH := exporthandler.New(exportUC)

	// Sale routes
	authed.Post("/sales", saleH.Create)
	authed.Get("/sales/history", saleH.History)

	// Product routes
	authed.Get("/products", productH.List)
	admin.Post("/products", productH.Create)
	admin.Patch("/products/:id", productH.Update)
	admin.Delete("/products/:id", productH.Delete)

	// Report routes
	admin.Get("/dashboard", reportH.Dashboard)
	admin.Get("/reports", reportH.EmployeeReport)
	admin.Get("/reports/export/:employeeId", exportH.Project)
}

type employeeFinderAdapter struct {
	repo *postgres.EmployeeRepo
}

func (a *employeeFinderAdapter) FindByEmail(ctx context.Context, email string) (*authuc.Employee, error) {
	e, err := a.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &authuc.Employee{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         e.Role,
	}, nil
}
