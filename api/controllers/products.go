package controllers

import (
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/modaloft/storefront/api/responses"
	"github.com/modaloft/storefront/api/validators"
	"github.com/modaloft/storefront/internal/catalog"
	"github.com/modaloft/storefront/internal/session"
	pkgerrors "github.com/modaloft/storefront/pkg/errors"
	"github.com/modaloft/storefront/pkg/logger"
)

type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Sort     catalog.SortKey   `json:"sort"`
}

// ListProducts serves the filtered, sorted listing. All filter parameters
// are optional; an unfiltered request returns the whole catalog.
func ListProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		priceMin, err := validators.ParseQueryInt(r, "price_min", 0, 0, math.MaxInt32)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priceMax, err := validators.ParseQueryInt(r, "price_max", 0, 0, math.MaxInt32)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		inStock, err := validators.ParseQueryBool(r, "in_stock", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := catalog.FilterSpec{
			Categories: validators.ParseQueryCSV(r, "categories"),
			PriceMin:   priceMin,
			PriceMax:   priceMax,
			Sizes:      validators.ParseQueryCSV(r, "sizes"),
			Colors:     validators.ParseQueryCSV(r, "colors"),
			InStock:    inStock,
		}
		key := catalog.ParseSortKey(r.URL.Query().Get("sort"))

		products := catalog.FilterAndSort(cat.Products(), r.URL.Query().Get("q"), filters, key)
		responses.WriteSuccess(w, productListResponse{
			Products: products,
			Total:    len(products),
			Sort:     key,
		})
	}
}

// GetProduct serves one product by id or slug and records the view on the
// session's history.
func GetProduct(cat *catalog.Catalog, registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		product, ok := cat.FindByID(id)
		if !ok {
			product, ok = cat.FindBySlug(id)
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		sessionStores(registry, r).Recent.Record(r.Context(), product)
		responses.WriteSuccess(w, product)
	}
}

// ListCategories serves the category tiles.
func ListCategories(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"categories": cat.Categories()})
	}
}
