// Package http wires the storefront API onto a chi router.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/momomonster549/ecom-macsorchids/pkg/health"
	"github.com/momomonster549/ecom-macsorchids/pkg/middleware"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog"
	"github.com/momomonster549/ecom-macsorchids/internal/content"
	"github.com/momomonster549/ecom-macsorchids/internal/service"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Catalog       catalog.Provider
	Cart          *service.CartService
	Wishlist      *service.WishlistService
	Checkout      *service.CheckoutService
	Content       *content.Service
	HealthHandler *health.Handler
	Logger        *slog.Logger
	CORS          middleware.CORSConfig
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(deps.Logger))

	// Health check endpoints
	r.Get("/health/live", deps.HealthHandler.LivenessHandler())
	r.Get("/health/ready", deps.HealthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	productHandler := NewProductHandler(deps.Catalog, deps.Logger)
	cartHandler := NewCartHandler(deps.Cart, deps.Logger)
	wishlistHandler := NewWishlistHandler(deps.Wishlist, deps.Cart, deps.Logger)
	checkoutHandler := NewCheckoutHandler(deps.Checkout, deps.Logger)
	contentHandler := NewContentHandler(deps.Content, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Public catalog and content endpoints.
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{id}", productHandler.GetProduct)
		r.Get("/products/{id}/related", productHandler.RelatedProducts)
		r.Get("/products/{id}/reviews", productHandler.Reviews)
		r.Get("/categories", productHandler.Categories)
		r.Get("/categories/{category}/subcategories", productHandler.Subcategories)

		r.Get("/guides", contentHandler.ListGuides)
		r.Get("/guides/featured", contentHandler.FeaturedGuide)
		r.Get("/guides/{slug}", contentHandler.GetGuide)
		r.Get("/store-info", contentHandler.StoreInfo)
		r.With(ContentTypeJSON).Post("/contact", contentHandler.SubmitContact)

		// Per-user state needs the gateway identity header.
		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(UserIDFromHeader)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Get("/quote", cartHandler.Quote)

				r.Post("/items", cartHandler.AddToCart)
				r.Put("/items/{productId}", cartHandler.UpdateQuantity)
				r.Delete("/items/{productId}", cartHandler.RemoveFromCart)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.GetWishlist)
				r.Delete("/", wishlistHandler.ClearWishlist)

				r.Post("/items", wishlistHandler.AddToWishlist)
				r.Get("/items/{productId}", wishlistHandler.Contains)
				r.Delete("/items/{productId}", wishlistHandler.RemoveFromWishlist)

				r.Post("/move-all", wishlistHandler.MoveAllToCart)
				r.Post("/{productId}/move-to-cart", wishlistHandler.MoveToCart)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", checkoutHandler.Start)
				r.Get("/", checkoutHandler.GetSession)
				r.Post("/information", checkoutHandler.SubmitInformation)
				r.Post("/shipping", checkoutHandler.SubmitShipping)
				r.Post("/payment", checkoutHandler.SubmitPayment)
			})
		})
	})

	return r
}
