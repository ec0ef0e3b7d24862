package httpserver

import (
	"context"
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/provider"
	cartrepo "storefront/internal/repository/cart"
)

type storefrontService interface {
	Mode() provider.Mode

	CreateCart(ctx context.Context) (*domain.Cart, error)
	AddToCart(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	RemoveFromCart(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
	UpdateCart(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	CheckoutRedirect(ctx context.Context, cartID string) (*domain.CheckoutRedirect, error)

	GetProduct(ctx context.Context, handle string) (*domain.Product, error)
	GetProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	GetProductRecommendations(ctx context.Context, productID string) ([]domain.Product, error)
	ProductExtras(ctx context.Context, productID string) domain.ProductExtra

	GetCollection(ctx context.Context, handle string) (*domain.Collection, error)
	GetCollectionProducts(ctx context.Context, q domain.CollectionProductsQuery) ([]domain.Product, error)
	GetCollections(ctx context.Context) ([]domain.Collection, error)

	GetMenu(ctx context.Context, handle string) ([]domain.MenuItem, error)
	GetPage(ctx context.Context, handle string) (*domain.Page, error)
	GetPages(ctx context.Context) ([]domain.Page, error)
}

// Deps groups the collaborators of the HTTP layer.
type Deps struct {
	Storefront       storefrontService
	CartStore        cartrepo.Pinger
	CORSAllowOrigins []string
}

type handlers struct {
	svc      storefrontService
	validate *validator.Validate
	logger   *zap.Logger
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Storefront == nil {
		return nil, errors.New("storefront service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger), cors.New(corsConfig(deps.CORSAllowOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.CartStore, string(deps.Storefront.Mode())))

	h := &handlers{svc: deps.Storefront, validate: validator.New(), logger: logger}

	api := router.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/products/:handle", h.getProduct)
	api.GET("/products/:handle/extras", h.getProductExtras)
	api.GET("/recommendations/:productId", h.getRecommendations)

	api.GET("/collections", h.listCollections)
	api.GET("/collections/:handle", h.getCollection)
	api.GET("/collections/:handle/products", h.getCollectionProducts)

	api.GET("/menus/:handle", h.getMenu)
	api.GET("/pages", h.listPages)
	api.GET("/pages/:handle", h.getPage)

	api.POST("/carts", h.createCart)
	api.POST("/carts/lines", h.addToCart)
	api.GET("/carts/:cartId", h.getCart)
	api.PUT("/carts/:cartId/lines", h.updateCart)
	api.DELETE("/carts/:cartId/lines", h.removeFromCart)
	api.POST("/carts/:cartId/checkout", h.checkout)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
