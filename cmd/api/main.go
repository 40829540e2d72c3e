package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sraidytech/Inventory-Management-sub001/internal/config"
	"github.com/sraidytech/Inventory-Management-sub001/internal/handler"
	"github.com/sraidytech/Inventory-Management-sub001/internal/middleware"
	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/internal/service"
	"github.com/sraidytech/Inventory-Management-sub001/internal/ws"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/database"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/jwt"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/logger"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	db, err := database.Connect(database.Options{DSN: cfg.DSN()})
	if err != nil {
		logger.Fatal(err)
	}
	if err := db.AutoMigrate(
		&model.Category{}, &model.Supplier{}, &model.Client{},
		&model.Product{}, &model.Transaction{}, &model.TransactionItem{},
		&model.Expense{}, &model.ExpenseCategory{},
		&model.Notification{}, &model.UserSettings{},
	); err != nil {
		logger.Fatal(err)
	}

	metrics.Register()

	// WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	clientRepo := repository.NewClientRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	notifRepo := repository.NewNotificationRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	ledgerService := service.NewLedgerService(productRepo, txRepo, clientRepo, notifRepo, db, wsHub)
	productService := service.NewProductService(productRepo)
	notifService := service.NewNotificationService(notifRepo, productRepo, txRepo, settingsRepo, db, wsHub, cfg.PaymentDueWindowDays)
	dashService := service.NewDashboardService(txRepo, cfg.RecentTransactions)

	productHandler := handler.NewProductHandler(productService)
	txHandler := handler.NewTransactionHandler(ledgerService)
	clientHandler := handler.NewClientHandler(clientRepo, txRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	expenseHandler := handler.NewExpenseHandler(expenseRepo)
	notifHandler := handler.NewNotificationHandler(notifService)
	dashHandler := handler.NewDashboardHandler(dashService)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)

	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	// Cron triggers (shared secret, no tenant identity)
	cron := api.Group("", middleware.RequireCronKey(cfg.CronKey))
	cron.Get("/notifications/payment-due-check", notifHandler.PaymentDueCheck)
	cron.Get("/products/stock-alert-check", notifHandler.StockAlertCheck)

	// All routes below require an authenticated tenant
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/dashboard/stats", dashHandler.GetStats)

	protected.Get("/products", productHandler.List)
	protected.Post("/products", productHandler.Create)
	protected.Get("/products/stock-alerts", productHandler.StockAlerts)
	protected.Get("/products/:id", productHandler.Get)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Get("/transactions", txHandler.List)
	protected.Post("/transactions", txHandler.Create)
	protected.Get("/transactions/:id", txHandler.Get)
	protected.Put("/transactions/:id", txHandler.Update)
	protected.Post("/transactions/:id/cancel", txHandler.Cancel)

	protected.Get("/clients", clientHandler.List)
	protected.Post("/clients", clientHandler.Create)
	protected.Get("/clients/:id", clientHandler.Get)
	protected.Put("/clients/:id", clientHandler.Update)
	protected.Delete("/clients/:id", clientHandler.Delete)
	protected.Get("/clients/:id/transactions", clientHandler.Transactions)

	protected.Get("/suppliers", supplierHandler.List)
	protected.Post("/suppliers", supplierHandler.Create)
	protected.Get("/suppliers/:id", supplierHandler.Get)
	protected.Put("/suppliers/:id", supplierHandler.Update)
	protected.Delete("/suppliers/:id", supplierHandler.Delete)

	protected.Get("/categories", categoryHandler.List)
	protected.Post("/categories", categoryHandler.Create)
	protected.Put("/categories/:id", categoryHandler.Update)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	protected.Get("/expenses", expenseHandler.List)
	protected.Post("/expenses", expenseHandler.Create)
	protected.Put("/expenses/:id", expenseHandler.Update)
	protected.Delete("/expenses/:id", expenseHandler.Delete)
	protected.Get("/expense-categories", expenseHandler.ListCategories)
	protected.Post("/expense-categories", expenseHandler.CreateCategory)
	protected.Delete("/expense-categories/:id", expenseHandler.DeleteCategory)

	protected.Get("/notifications", notifHandler.List)
	protected.Get("/notifications/unread-count", notifHandler.UnreadCount)
	protected.Put("/notifications/read-all", notifHandler.MarkAllRead)
	protected.Put("/notifications/:id/read", notifHandler.MarkRead)
	protected.Put("/notifications/:id/archive", notifHandler.Archive)
	protected.Delete("/notifications/:id", notifHandler.Delete)

	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)

	// WebSocket route; token comes in as a query param since browsers
	// cannot set headers on websocket upgrades.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.SendStatus(fiber.StatusUpgradeRequired)
		}
		claims, err := jwt.ValidateToken(c.Query("token"))
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		c.Locals("user_id", claims.Subject)
		return c.Next()
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		userID, _ := c.Locals("user_id").(string)
		wsHub.Register(userID, c)
		defer wsHub.Unregister(userID, c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Panic("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Fatal(err)
	}
	logger.Info("server exited")
}
