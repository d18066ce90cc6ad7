package orders

import (
	"context"
	"strings"
	"time"

	"dorata/cart"
	"dorata/models"

	"github.com/google/uuid"
)

// Submit validates the checkout form against the cart, appends the resulting
// order, and clears the cart only once the append has succeeded. Any append
// failure leaves the cart intact so the customer can retry without re-picking.
func Submit(ctx context.Context, store *Store, c *cart.Cart, form SubmissionForm) (models.Order, error) {
	if verr := form.Validate(); verr != nil {
		return models.Order{}, verr
	}

	view := c.View()
	if len(view.Lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.OrderItem, len(view.Lines))
	for i, line := range view.Lines {
		items[i] = models.OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Size:     models.SizeLabel(line.Size),
		}
	}

	order := models.Order{
		OrderID:       newOrderID(),
		CustomerName:  strings.TrimSpace(form.Name),
		CustomerPhone: stripSpaces(form.Phone),
		PickupTime:    form.PickupTime,
		Items:         items,
		Total:         view.Total,
		CreatedAt:     time.Now().UTC(),
		Status:        models.StatusPending,
	}

	if err := store.Append(ctx, order); err != nil {
		return models.Order{}, &SubmissionError{Err: err}
	}

	c.Clear()
	return order, nil
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
