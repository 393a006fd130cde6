package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC      *usecase.UserUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Users (público: el registro no requiere token)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/create", userHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/create", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:warehouseId/products", warehouseHandler.ListProducts)
	warehouses.Put("/update/:warehouseId", warehouseHandler.Update)
	warehouses.Delete("/delete/:warehouseId", warehouseHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/create", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/update/:productId/warehouse/:warehouseId/stock", productHandler.UpdateStock)
	products.Put("/update/:productId", productHandler.Update)
	products.Delete("/delete/:productId", productHandler.Delete)
}
