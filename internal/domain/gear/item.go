package gear

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInsufficientInventory = errors.New("requested quantity exceeds inventory")
	ErrMalformedPayload      = errors.New("malformed payment payload")
	ErrItemNotFound          = errors.New("gear item not found")
)

// ItemKey is the identity of an inventory line. Two items with the same name
// and different sizes are distinct SKUs; an empty size means sizeless.
type ItemKey struct {
	Name string
	Size string
}

// Item is a read-only snapshot of one merchandise SKU.
type Item struct {
	ID         uuid.UUID
	Name       string
	Size       string
	PriceCents int64
	Inventory  int
}

func (i Item) Key() ItemKey {
	return ItemKey{Name: i.Name, Size: i.Size}
}
