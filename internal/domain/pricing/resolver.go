// Package pricing resolves and formats prompt unlock prices.
package pricing

import "fmt"

// Resolver clamps per-artwork overrides into the configured price range.
// All amounts are minor currency units.
type Resolver struct {
	defaultPrice int64
	minPrice     int64
	maxPrice     int64
}

// NewResolver builds a Resolver. Callers validate min <= default <= max.
func NewResolver(defaultPrice, minPrice, maxPrice int64) *Resolver {
	return &Resolver{
		defaultPrice: defaultPrice,
		minPrice:     minPrice,
		maxPrice:     maxPrice,
	}
}

// Resolve returns the effective price. A nil override means the default;
// whatever the source, the result lies in [min, max].
func (r *Resolver) Resolve(override *int64) int64 {
	price := r.defaultPrice
	if override != nil {
		price = *override
	}

	return min(max(price, r.minPrice), r.maxPrice)
}

// Default returns the configured default price.
func (r *Resolver) Default() int64 {
	return r.defaultPrice
}

// InRange reports whether price is an acceptable override.
func (r *Resolver) InRange(price int64) bool {
	return price >= r.minPrice && price <= r.maxPrice
}

// Format renders minor units as dollars, e.g. 399 -> "$3.99".
func Format(minor int64) string {
	sign := ""
	abs := uint64(minor)
	if minor < 0 {
		sign = "-"
		// two's complement negation stays exact for math.MinInt64
		abs = -abs
	}

	return fmt.Sprintf("%s$%d.%02d", sign, abs/100, abs%100)
}
