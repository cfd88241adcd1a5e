package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-resto-ops/internal/handler"
	"go-resto-ops/internal/middleware"
	"go-resto-ops/internal/model"
	"go-resto-ops/internal/repository"
	"go-resto-ops/internal/service"
	"go-resto-ops/internal/ws"
	"go-resto-ops/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Storage (memory by default, postgres when configured)
	store := buildStore()

	// 3. Seed default admin user
	seedAdmin(store)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	catalogService := service.NewCatalogService(store.Ingredients, store.Recipes)
	inventoryService := service.NewInventoryService(store.Products, store.CostHistory, wsHub)
	salesService := service.NewSalesService(store.Sales, store.Products, store.OperationalCosts, wsHub)
	analyticsService := service.NewAnalyticsService(store.Sales, store.Products)
	authService := service.NewAuthService(store.Users)
	userService := service.NewUserService(store.Users)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	invHandler := handler.NewInventoryHandler(inventoryService)
	salesHandler := handler.NewSalesHandler(salesService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Resto Ops v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 7. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(store.Users))

	// Ingredient routes
	protected.Get("/ingredients", catalogHandler.GetIngredients)
	protected.Get("/ingredients/:id", catalogHandler.GetIngredient)
	protected.Post("/ingredients", catalogHandler.CreateIngredient)
	protected.Put("/ingredients/:id", catalogHandler.UpdateIngredient)
	protected.Delete("/ingredients/:id", catalogHandler.DeleteIngredient)

	// Recipe routes
	protected.Get("/recipes", catalogHandler.GetRecipes)
	protected.Get("/recipes/:id", catalogHandler.GetRecipe)
	protected.Get("/recipes/:id/details", catalogHandler.GetRecipeDetails)
	protected.Post("/recipes", catalogHandler.CreateRecipe)
	protected.Put("/recipes/:id", catalogHandler.UpdateRecipe)
	protected.Delete("/recipes/:id", catalogHandler.DeleteRecipe)

	// Product routes (with-margin must be registered before :id)
	protected.Get("/products/with-margin", invHandler.GetProductsWithMargin)
	protected.Get("/products", invHandler.GetProducts)
	protected.Get("/products/:id", invHandler.GetProduct)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)

	// Inventory views
	protected.Get("/inventory/alerts", invHandler.GetInventoryAlerts)
	protected.Get("/cost-history", invHandler.GetCostHistory)

	// Sale routes
	protected.Get("/sales", salesHandler.GetSales)
	protected.Get("/sales/:id", salesHandler.GetSale)
	protected.Get("/sales/:id/details", salesHandler.GetSaleDetails)
	protected.Post("/sales", salesHandler.CreateSale)
	protected.Put("/sales/:id", salesHandler.UpdateSale)
	protected.Delete("/sales/:id", salesHandler.DeleteSale)

	// Operational cost routes
	protected.Get("/operational-costs", salesHandler.GetOperationalCosts)
	protected.Get("/operational-costs/:id", salesHandler.GetOperationalCost)
	protected.Post("/operational-costs", salesHandler.CreateOperationalCost)
	protected.Put("/operational-costs/:id", salesHandler.UpdateOperationalCost)
	protected.Delete("/operational-costs/:id", salesHandler.DeleteOperationalCost)

	// Aggregators
	protected.Get("/analytics", analyticsHandler.GetSalesAnalytics)
	protected.Get("/summary", catalogHandler.GetSummary)

	// User management routes
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", userHandler.CreateUser)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// buildStore selects the storage backend. Both implement the same contract;
// everything above this call is backend-agnostic.
func buildStore() *repository.Store {
	switch os.Getenv("STORAGE_BACKEND") {
	case "postgres":
		db := database.ConnectDB()
		if err := db.AutoMigrate(
			&model.Ingredient{}, &model.Recipe{}, &model.RecipeItem{},
			&model.Product{}, &model.Sale{}, &model.SaleItem{},
			&model.OperationalCost{}, &model.CostHistory{}, &model.User{},
		); err != nil {
			log.Fatal("Auto migration failed: ", err)
		}
		return repository.NewPostgresStore(db)
	default:
		log.Println("Using in-memory store (set STORAGE_BACKEND=postgres for persistence)")
		return repository.NewMemoryStore()
	}
}

// seedAdmin creates the default admin account if it does not exist yet
func seedAdmin(store *repository.Store) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := store.Users.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := store.Users.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("✅ Admin user created: %s", email)
}
