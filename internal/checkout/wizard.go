package checkout

import (
	"context"
	"math/rand"
	"sync"

	"github.com/modaloft/storefront/internal/cart"
	"github.com/modaloft/storefront/pkg/config"
	"github.com/modaloft/storefront/pkg/errors"
	"github.com/modaloft/storefront/pkg/metrics"
)

// Step is a position in the checkout flow.
type Step int

const (
	StepShipping Step = 1
	StepPayment  Step = 2
	StepReview   Step = 3
)

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const orderIDLength = 9

// Wizard drives one session's checkout. It lives in memory only; an
// abandoned checkout starts over. Forward movement requires the current
// step to validate, backward movement is always free.
type Wizard struct {
	mu        sync.Mutex
	started   bool
	submitted bool
	step      Step
	shipping  *ShippingInfo
	payment   *PaymentInfo
	promo     *Promo
	orderID   string

	cart    *cart.Store
	cfg     config.CheckoutConfig
	metrics *metrics.StoreMetrics
}

// Status is a read-only view of the wizard for API responses.
type Status struct {
	Started   bool          `json:"started"`
	Submitted bool          `json:"submitted"`
	Step      Step          `json:"step"`
	Shipping  *ShippingInfo `json:"shipping,omitempty"`
	Payment   *PaymentInfo  `json:"payment,omitempty"`
	Promo     *Promo        `json:"promo,omitempty"`
	OrderID   string        `json:"order_id,omitempty"`
}

// NewWizard binds a wizard to the session's cart.
func NewWizard(cartStore *cart.Store, cfg config.CheckoutConfig, m *metrics.StoreMetrics) *Wizard {
	return &Wizard{cart: cartStore, cfg: cfg, metrics: m}
}

// Start begins (or restarts) the flow at the shipping step. An empty cart
// cannot enter checkout.
func (w *Wizard) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cart.TotalItems() == 0 {
		return errors.New(errors.CodeStateConflict, "cart is empty")
	}
	w.started = true
	w.submitted = false
	w.step = StepShipping
	w.shipping = nil
	w.payment = nil
	w.promo = nil
	w.orderID = ""
	return nil
}

// SubmitShipping captures step one and advances to payment. Validation
// failures are returned as a field-to-message map inside the error details.
func (w *Wizard) SubmitShipping(info ShippingInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.active(); err != nil {
		return err
	}
	if problems := ValidateShipping(info); len(problems) > 0 {
		return errors.New(errors.CodeValidation, "shipping information is invalid").WithDetails(problems)
	}
	w.shipping = &info
	if w.step < StepPayment {
		w.step = StepPayment
	}
	return nil
}

// SubmitPayment captures step two and advances to review. The card brand is
// detected from the number, never taken from the client.
func (w *Wizard) SubmitPayment(info PaymentInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.active(); err != nil {
		return err
	}
	if w.shipping == nil {
		return errors.New(errors.CodeStateConflict, "shipping step is not complete")
	}
	if problems := ValidatePayment(info); len(problems) > 0 {
		return errors.New(errors.CodeValidation, "payment information is invalid").WithDetails(problems)
	}
	if info.Method == PaymentCard {
		info.CardBrand = DetectCardBrand(info.CardNumber)
		info.CardNumber = FormatCardNumber(info.CardNumber)
		info.Expiry = FormatExpiry(info.Expiry)
	}
	w.payment = &info
	if w.step < StepReview {
		w.step = StepReview
	}
	return nil
}

// GoToStep jumps directly to a step. Backward jumps are always allowed;
// jumping to payment needs shipping captured and jumping to review needs
// both captures.
func (w *Wizard) GoToStep(step Step) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.active(); err != nil {
		return err
	}
	allowed := step >= StepShipping && step <= StepReview &&
		(step <= w.step ||
			(step == StepPayment && w.shipping != nil) ||
			(step == StepReview && w.shipping != nil && w.payment != nil))
	if !allowed {
		return errors.New(errors.CodeStateConflict, "step is not reachable")
	}
	w.step = step
	return nil
}

// ApplyPromo replaces the active promo code. An unknown code leaves the
// current promo in place.
func (w *Wizard) ApplyPromo(code string) (Promo, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.active(); err != nil {
		return Promo{}, err
	}
	promo, err := LookupPromo(code)
	if err != nil {
		return Promo{}, err
	}
	w.promo = &promo
	return promo, nil
}

// RemovePromo clears the active promo code.
func (w *Wizard) RemovePromo() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.active(); err != nil {
		return err
	}
	w.promo = nil
	return nil
}

// Quote prices the cart with the current shipping method and promo.
func (w *Wizard) Quote() Quote {
	w.mu.Lock()
	defer w.mu.Unlock()
	method := ShippingStandard
	if w.shipping != nil && w.shipping.Method != "" {
		method = w.shipping.Method
	}
	return ComputeQuote(w.cart.TotalPrice(), method, w.promo, w.cfg)
}

// PlaceOrder finalizes the checkout from the review step: it issues the
// order id, clears the cart and discards the captured session data.
func (w *Wizard) PlaceOrder(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.active(); err != nil {
		return "", err
	}
	if w.step != StepReview {
		return "", errors.New(errors.CodeStateConflict, "checkout is not at the review step")
	}
	if w.cart.TotalItems() == 0 {
		return "", errors.New(errors.CodeStateConflict, "cart is empty")
	}

	w.orderID = newOrderID()
	w.submitted = true
	w.shipping = nil
	w.payment = nil
	w.promo = nil
	w.cart.Clear(ctx)
	w.metrics.IncOrderPlaced()
	return w.orderID, nil
}

// Status returns a snapshot of the wizard for rendering.
func (w *Wizard) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	status := Status{
		Started:   w.started,
		Submitted: w.submitted,
		Step:      w.step,
		OrderID:   w.orderID,
	}
	if w.shipping != nil {
		shipping := *w.shipping
		status.Shipping = &shipping
	}
	if w.payment != nil {
		payment := *w.payment
		status.Payment = &payment
	}
	if w.promo != nil {
		promo := *w.promo
		status.Promo = &promo
	}
	return status
}

func (w *Wizard) active() error {
	if !w.started || w.submitted {
		return errors.New(errors.CodeStateConflict, "checkout has not been started")
	}
	return nil
}

func newOrderID() string {
	id := make([]byte, orderIDLength)
	for i := range id {
		id[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return string(id)
}
