package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  Hot Drinks!! ", want: "hot-drinks"},
		{in: "Coffee", want: "coffee"},
		{in: "Tea & Snacks", want: "tea-snacks"},
		{in: "--already-slugged--", want: "already-slugged"},
		{in: "Café au lait", want: "caf-au-lait"},
		{in: "2024 Deals", want: "2024-deals"},
		{in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestPostPriceKey(t *testing.T) {
	five, ten := 5, 10

	assert.Equal(t, 5, (&Post{PriceMin: &five, PriceMax: &ten}).PriceKey())
	assert.Equal(t, 10, (&Post{PriceMax: &ten}).PriceKey())
	assert.Equal(t, 0, (&Post{}).PriceKey())
}

func TestValidPriceRange(t *testing.T) {
	five, ten, neg := 5, 10, -1

	assert.True(t, ValidPriceRange(nil, nil))
	assert.True(t, ValidPriceRange(&five, &ten))
	assert.True(t, ValidPriceRange(&ten, nil))
	assert.False(t, ValidPriceRange(&ten, &five))
	assert.False(t, ValidPriceRange(&neg, nil))
}

func TestNewEntitlement(t *testing.T) {
	anon := NewEntitlement(nil)
	assert.False(t, anon.Authenticated)
	assert.False(t, anon.CanReadPremium)

	premium := NewEntitlement(&Requester{Role: RoleUser, IsPremium: true})
	assert.True(t, premium.CanReadPremium)
	assert.False(t, premium.CanModerate)

	admin := NewEntitlement(&Requester{Role: RoleAdmin})
	assert.True(t, admin.CanReadPremium)
	assert.True(t, admin.CanModerate)
	assert.True(t, admin.CanOwnShops)

	vendor := NewEntitlement(&Requester{Role: RoleVendor})
	assert.True(t, vendor.CanOwnShops)
	assert.False(t, vendor.CanReadPremium)
}
