package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/modaloft/storefront/api/controllers"
	"github.com/modaloft/storefront/api/middleware"
	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/session"
	"github.com/modaloft/storefront/internal/storage"
	"github.com/modaloft/storefront/pkg/config"
	"github.com/modaloft/storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cat *catalog.Catalog,
	registry *session.Registry,
	snapshots storage.Store,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, snapshots))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Get("/products", controllers.ListProducts(cat, logg))
		r.Get("/products/{id}", controllers.GetProduct(cat, registry, logg))
		r.Get("/categories", controllers.ListCategories(cat))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(registry))
			r.Delete("/", controllers.ClearCart(registry))
			r.Post("/items", controllers.AddCartItem(cat, registry, logg))
			r.Patch("/items/{id}", controllers.UpdateCartItem(registry, logg))
			r.Delete("/items/{id}", controllers.RemoveCartItem(registry))
			r.Post("/open", controllers.CartVisibility(registry, "open"))
			r.Post("/close", controllers.CartVisibility(registry, "close"))
			r.Post("/toggle", controllers.CartVisibility(registry, "toggle"))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(registry))
			r.Delete("/", controllers.ClearWishlist(registry))
			r.Put("/{productID}", controllers.AddWishlistItem(cat, registry, logg))
			r.Delete("/{productID}", controllers.RemoveWishlistItem(registry))
		})

		r.Route("/recently-viewed", func(r chi.Router) {
			r.Get("/", controllers.GetRecentlyViewed(registry))
			r.Delete("/", controllers.ClearRecentlyViewed(registry))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", controllers.StartCheckout(registry, logg))
			r.Get("/", controllers.GetCheckout(registry))
			r.Post("/shipping", controllers.SubmitShipping(registry, logg))
			r.Post("/payment", controllers.SubmitPayment(registry, logg))
			r.Post("/step/{n}", controllers.GoToStep(registry, logg))
			r.Post("/promo", controllers.ApplyPromo(registry, logg))
			r.Delete("/promo", controllers.RemovePromo(registry, logg))
			r.Get("/quote", controllers.GetQuote(registry))
			r.Post("/order", controllers.PlaceOrder(registry, logg))
		})
	})

	return r
}
