package cart

import (
	"sync"
	"time"

	"dorata/models"
)

// Cart holds one customer session's selections. Lines keep insertion order for
// stable display; identity is the composite (item, size) key, so the same
// pizza at two sizes is two lines. Totals are recomputed under the same lock
// as every mutation, so readers always see a consistent triple.
type Cart struct {
	mu        sync.Mutex
	lines     []*models.CartLine
	byID      map[string]*models.CartLine
	total     float64
	itemCount int
	touchedAt time.Time
}

func New() *Cart {
	return &Cart{
		byID:      make(map[string]*models.CartLine),
		touchedAt: time.Now(),
	}
}

// LineID builds the composite identity for an (item, size) selection.
func LineID(itemID, size string) string {
	if size == "" {
		return itemID
	}
	return itemID + ":" + size
}

// AddItem creates a line with quantity 1, or increments the existing line with
// the same composite identity. The unit price is snapshotted here and never
// re-read from the catalog.
func (c *Cart) AddItem(item models.MenuItem, size string, unitPrice float64) models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := LineID(item.ItemID, size)
	if line, ok := c.byID[id]; ok {
		line.Quantity++
		c.recompute()
		return *line
	}

	line := &models.CartLine{
		LineID:      id,
		ItemID:      item.ItemID,
		Name:        item.Name,
		Description: item.Description,
		Size:        size,
		Quantity:    1,
		Price:       unitPrice,
		AddedAt:     time.Now(),
	}
	c.lines = append(c.lines, line)
	c.byID[id] = line
	c.recompute()
	return *line
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line;
// updating an absent line is a no-op.
func (c *Cart) UpdateQuantity(lineID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.byID[lineID]
	if !ok {
		return
	}
	if quantity <= 0 {
		c.removeLocked(lineID)
	} else {
		line.Quantity = quantity
	}
	c.recompute()
}

// RemoveItem drops a line if present.
func (c *Cart) RemoveItem(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[lineID]; !ok {
		return
	}
	c.removeLocked(lineID)
	c.recompute()
}

// Clear empties the cart. Called once, right after a confirmed submission.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.byID = make(map[string]*models.CartLine)
	c.recompute()
}

// View returns the line set with the derived totals as one consistent snapshot.
func (c *Cart) View() models.CartView {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.CartLine, len(c.lines))
	for i, l := range c.lines {
		lines[i] = *l
	}
	return models.CartView{Lines: lines, Total: c.total, ItemCount: c.itemCount}
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Touch marks the cart as recently used for session expiry.
func (c *Cart) Touch() {
	c.mu.Lock()
	c.touchedAt = time.Now()
	c.mu.Unlock()
}

func (c *Cart) lastTouched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touchedAt
}

func (c *Cart) removeLocked(lineID string) {
	delete(c.byID, lineID)
	for i, l := range c.lines {
		if l.LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// recompute derives total and itemCount from the line set. Callers hold c.mu.
func (c *Cart) recompute() {
	c.touchedAt = time.Now()
	total := 0.0
	count := 0
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
		count += l.Quantity
	}
	c.total = total
	c.itemCount = count
}
