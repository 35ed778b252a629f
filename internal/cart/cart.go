package cart

import "strconv"

// Cart maps product IDs (as decimal strings, matching the session encoding)
// to positive quantities. It lives only in the session; product existence is
// checked lazily when the cart is materialized at checkout.
type Cart map[string]int

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

// Add increments the quantity for a product, inserting it if absent.
// Quantities below 1 are treated as 1.
func (c Cart) Add(productID uint, qty int) {
	if qty < 1 {
		qty = 1
	}
	c[key(productID)] += qty
}

// Remove deletes a product from the cart. Removing an absent product is a no-op.
func (c Cart) Remove(productID uint) {
	delete(c, key(productID))
}

// Quantity returns the quantity for a product, zero if absent.
func (c Cart) Quantity(productID uint) int {
	return c[key(productID)]
}

// IDs returns the product IDs currently in the cart. Keys that do not parse
// as unsigned integers are skipped.
func (c Cart) IDs() []uint {
	ids := make([]uint, 0, len(c))
	for k := range c {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// IsEmpty reports whether the cart has no entries.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func key(productID uint) string {
	return strconv.FormatUint(uint64(productID), 10)
}
