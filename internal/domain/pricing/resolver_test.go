package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(999, 99, 9999)

	tests := []struct {
		name     string
		override *int64
		want     int64
	}{
		{name: "nil uses default", override: nil, want: 999},
		{name: "below floor", override: ptr(50), want: 99},
		{name: "at floor", override: ptr(99), want: 99},
		{name: "in range", override: ptr(1500), want: 1500},
		{name: "at ceiling", override: ptr(9999), want: 9999},
		{name: "above ceiling", override: ptr(10000), want: 9999},
		{name: "zero", override: ptr(0), want: 99},
		{name: "negative", override: ptr(-500), want: 99},
		{name: "max int", override: ptr(math.MaxInt64), want: 9999},
		{name: "min int", override: ptr(math.MinInt64), want: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.override))
		})
	}
}

func TestResolver_ResolveAlwaysInRange(t *testing.T) {
	resolver := NewResolver(399, 99, 9999)

	for p := int64(-20000); p <= 20000; p += 37 {
		got := resolver.Resolve(ptr(p))
		assert.GreaterOrEqual(t, got, int64(99), "override %d", p)
		assert.LessOrEqual(t, got, int64(9999), "override %d", p)
	}
}

func TestResolver_DefaultIsClampedToo(t *testing.T) {
	resolver := NewResolver(5, 99, 9999)

	assert.Equal(t, int64(99), resolver.Resolve(nil))
}

func TestResolver_InRange(t *testing.T) {
	resolver := NewResolver(399, 99, 9999)

	assert.True(t, resolver.InRange(99))
	assert.True(t, resolver.InRange(9999))
	assert.False(t, resolver.InRange(98))
	assert.False(t, resolver.InRange(10000))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 399, want: "$3.99"},
		{in: 999, want: "$9.99"},
		{in: 100, want: "$1.00"},
		{in: 5, want: "$0.05"},
		{in: 0, want: "$0.00"},
		{in: 123456, want: "$1234.56"},
		{in: -250, want: "-$2.50"},
		{in: -5, want: "-$0.05"},
		{in: math.MaxInt64, want: "$92233720368547758.07"},
		{in: math.MinInt64, want: "-$92233720368547758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}
