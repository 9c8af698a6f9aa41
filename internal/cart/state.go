package cart

import (
	"fmt"

	"github.com/modaloft/storefront/internal/catalog"
)

// LineItem is one cart entry, identified by product plus variant selection.
type LineItem struct {
	ID            string          `json:"id"`
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selected_size,omitempty"`
	SelectedColor string          `json:"selected_color,omitempty"`
}

// LineID derives the deterministic line key. Omitted size/color normalize to
// the empty string, so "p1--" and "p1-M-Red" are distinct lines.
func LineID(productID, size, color string) string {
	return fmt.Sprintf("%s-%s-%s", productID, size, color)
}

// State is the full cart state. The visibility flag is never persisted.
type State struct {
	Items  []LineItem
	IsOpen bool
}

// Command is the tagged command set processed by Apply.
type Command interface {
	isCommand()
}

type AddItem struct {
	Product       catalog.Product
	Quantity      int
	SelectedSize  string
	SelectedColor string
}

type RemoveItem struct {
	ID string
}

type UpdateQuantity struct {
	ID       string
	Quantity int
}

type Clear struct{}

type Toggle struct{}

type Open struct{}

type Close struct{}

type Load struct {
	Items []LineItem
}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}
func (Toggle) isCommand()         {}
func (Open) isCommand()           {}
func (Close) isCommand()          {}
func (Load) isCommand()           {}

// Apply is the pure transition function. It never mutates the input state;
// item slices are copied before modification.
func Apply(state State, cmd Command) State {
	switch c := cmd.(type) {
	case AddItem:
		id := LineID(c.Product.ID, c.SelectedSize, c.SelectedColor)
		items := copyItems(state.Items)
		for i := range items {
			if items[i].ID == id {
				items[i].Quantity += c.Quantity
				state.Items = items
				return state
			}
		}
		state.Items = append(items, LineItem{
			ID:            id,
			Product:       c.Product,
			Quantity:      c.Quantity,
			SelectedSize:  c.SelectedSize,
			SelectedColor: c.SelectedColor,
		})
		return state

	case RemoveItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != c.ID {
				items = append(items, item)
			}
		}
		state.Items = items
		return state

	case UpdateQuantity:
		items := copyItems(state.Items)
		for i := range items {
			if items[i].ID == c.ID {
				items[i].Quantity = c.Quantity
			}
		}
		state.Items = items
		return state

	case Clear:
		state.Items = nil
		return state

	case Toggle:
		state.IsOpen = !state.IsOpen
		return state

	case Open:
		state.IsOpen = true
		return state

	case Close:
		state.IsOpen = false
		return state

	case Load:
		state.Items = copyItems(c.Items)
		return state

	default:
		return state
	}
}

// TotalItems sums the quantities across all lines.
func (s State) TotalItems() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price times quantity across all lines. Tax, shipping and
// discounts are checkout concerns and never applied here.
func (s State) TotalPrice() int {
	total := 0
	for _, item := range s.Items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

func copyItems(items []LineItem) []LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
