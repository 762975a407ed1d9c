package gear

// Cart is a plain value: every operation takes a cart and returns the next
// one, so the session layer stays a dumb key-value store and the
// reconciliation rules test without any live session.

type Line struct {
	Name       string
	Size       string
	PriceCents int64
	Quantity   int
}

func (l Line) SubtotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}

type Cart struct {
	Lines []Line
}

func (c Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.SubtotalCents()
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) quantityOf(key ItemKey) int {
	for _, l := range c.Lines {
		if l.Name == key.Name && l.Size == key.Size {
			return l.Quantity
		}
	}
	return 0
}

// Add admits the requested quantity only while the line's new total stays
// within the item's inventory snapshot. The check is advisory: nothing is
// reserved, and stock is only decremented once a payment notification
// clears, so two concurrent sessions can both pass here and overdraw later.
func (c Cart) Add(item Item, quantity int) (Cart, error) {
	if quantity < 1 {
		return c, ErrInvalidQuantity
	}
	if c.quantityOf(item.Key())+quantity > item.Inventory {
		return c, ErrInsufficientInventory
	}

	next := c.clone()
	for i, l := range next.Lines {
		if l.Name == item.Name && l.Size == item.Size {
			next.Lines[i].Quantity += quantity
			return next, nil
		}
	}
	next.Lines = append(next.Lines, Line{
		Name:       item.Name,
		Size:       item.Size,
		PriceCents: item.PriceCents,
		Quantity:   quantity,
	})
	return next, nil
}

// RemoveOne decrements the matching line by a single unit, dropping the line
// once it reaches zero. Inventory is untouched.
func (c Cart) RemoveOne(key ItemKey) Cart {
	next := c.clone()
	for i, l := range next.Lines {
		if l.Name != key.Name || l.Size != key.Size {
			continue
		}
		if l.Quantity <= 1 {
			next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
		} else {
			next.Lines[i].Quantity--
		}
		return next
	}
	return next
}

func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{}
	}
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
