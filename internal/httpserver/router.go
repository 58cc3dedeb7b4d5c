package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"triply/internal/domain"
	adminsvc "triply/internal/service/admin"
	catalogsvc "triply/internal/service/catalog"
)

type catalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Posts(ctx context.Context) ([]domain.Post, error)
	Destinations(ctx context.Context) ([]domain.Destination, error)
	Summary(ctx context.Context) (*catalogsvc.Summary, error)
}

type cartService interface {
	Get(ctx context.Context) (*domain.Cart, error)
	Add(ctx context.Context, productID int64, quantity int) (*domain.Cart, error)
	SetQuantity(ctx context.Context, productID int64, quantity int) (*domain.Cart, error)
	Remove(ctx context.Context, productID int64) (*domain.Cart, error)
	Clear(ctx context.Context) (*domain.Cart, error)
}

type adminService interface {
	CreateProduct(ctx context.Context, in adminsvc.ProductInput) (*domain.Product, error)
	CreatePost(ctx context.Context, in adminsvc.PostInput) (*domain.Post, error)
	CreateDestination(ctx context.Context, in adminsvc.DestinationInput) (*domain.Destination, error)
}

type authService interface {
	Login(role string) (domain.Role, error)
}

// Deps carries the services the router needs.
type Deps struct {
	CatalogSvc catalogService
	CartSvc    cartService
	AdminSvc   adminService
	AuthSvc    authService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, conn *sql.DB, deps Deps, corsOrigin string) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.CartSvc == nil || deps.AdminSvc == nil || deps.AuthSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	// Credentials must be allowed for the session cookie, which rules out
	// a wildcard origin.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(conn))

	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/posts", listPostsHandler(deps.CatalogSvc))
	api.GET("/destinations", listDestinationsHandler(deps.CatalogSvc))
	api.GET("/summary", summaryHandler(deps.CatalogSvc))

	api.GET("/cart", getCartHandler(deps.CartSvc))
	api.POST("/cart/items", addCartItemHandler(deps.CartSvc))
	api.PATCH("/cart/items/:productId", setCartItemHandler(deps.CartSvc))
	api.DELETE("/cart/items/:productId", removeCartItemHandler(deps.CartSvc))
	api.POST("/cart/clear", clearCartHandler(deps.CartSvc))

	api.GET("/auth/me", meHandler)
	api.POST("/auth/login", loginHandler(deps.AuthSvc))
	api.POST("/auth/logout", logoutHandler)

	admin := api.Group("/admin", requireAdmin())
	admin.POST("/products", createProductHandler(deps.AdminSvc))
	admin.POST("/posts", createPostHandler(deps.AdminSvc))
	admin.POST("/destinations", createDestinationHandler(deps.AdminSvc))

	return router, nil
}
