package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/modaloft/storefront/api/responses"
	"github.com/modaloft/storefront/api/validators"
	"github.com/modaloft/storefront/internal/checkout"
	"github.com/modaloft/storefront/internal/session"
	pkgerrors "github.com/modaloft/storefront/pkg/errors"
	"github.com/modaloft/storefront/pkg/logger"
)

// StartCheckout begins (or restarts) the wizard at the shipping step.
func StartCheckout(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard := sessionStores(registry, r).Checkout
		if err := wizard.Start(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, wizard.Status())
	}
}

// GetCheckout serves the wizard's current state.
func GetCheckout(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sessionStores(registry, r).Checkout.Status())
	}
}

// SubmitShipping captures the shipping step and advances on success.
func SubmitShipping(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkout.ShippingInfo
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		wizard := sessionStores(registry, r).Checkout
		if err := wizard.SubmitShipping(payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, wizard.Status())
	}
}

// SubmitPayment captures the payment step and advances on success.
func SubmitPayment(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkout.PaymentInfo
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		wizard := sessionStores(registry, r).Checkout
		if err := wizard.SubmitPayment(payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, wizard.Status())
	}
}

// GoToStep jumps the wizard to the requested step when reachable.
func GoToStep(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := strconv.Atoi(chi.URLParam(r, "n"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "step must be numeric"))
			return
		}

		wizard := sessionStores(registry, r).Checkout
		if err := wizard.GoToStep(checkout.Step(step)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, wizard.Status())
	}
}

type applyPromoRequest struct {
	Code string `json:"code" validate:"required"`
}

// ApplyPromo swaps the active promo for the given code.
func ApplyPromo(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload applyPromoRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		wizard := sessionStores(registry, r).Checkout
		promo, err := wizard.ApplyPromo(payload.Code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"promo": promo, "quote": wizard.Quote()})
	}
}

// RemovePromo clears the active promo.
func RemovePromo(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard := sessionStores(registry, r).Checkout
		if err := wizard.RemovePromo(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"quote": wizard.Quote()})
	}
}

// GetQuote prices the cart with the captured shipping method and promo.
func GetQuote(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sessionStores(registry, r).Checkout.Quote())
	}
}

// PlaceOrder finalizes the checkout and returns the order id.
func PlaceOrder(registry *session.Registry, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard := sessionStores(registry, r).Checkout
		orderID, err := wizard.PlaceOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"order_id": orderID})
	}
}
