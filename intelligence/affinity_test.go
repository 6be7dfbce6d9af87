package intelligence

import (
	"fmt"
	"testing"

	"storepulse/model/model"

	"github.com/stretchr/testify/assert"
)

func orderWithBrands(t *testing.T, email string, brands ...string) model.Order {
	items := make([]model.OrderLineItem, 0, len(brands))
	for _, brand := range brands {
		items = append(items, model.OrderLineItem{Brand: brand, Title: brand + " Item"})
	}
	return model.Order{CustomerEmail: email, CreatedAt: testTime(t, "2026-06-01T00:00:00Z"), LineItems: items}
}

func TestBuildBrandAffinityIndependentBrandsHaveLiftOne(t *testing.T) {
	// 100 customers, brands Acme and Bolt each bought by 50, overlap 25:
	// expected co-purchases under independence = 0.5 * 0.5 * 100 = 25.
	orders := make([]model.Order, 0, 100)
	for i := 0; i < 100; i++ {
		email := fmt.Sprintf("c%d@example.com", i)
		switch {
		case i < 25:
			orders = append(orders, orderWithBrands(t, email, "Acme", "Bolt"))
		case i < 50:
			orders = append(orders, orderWithBrands(t, email, "Acme", "Filler"))
		case i < 75:
			orders = append(orders, orderWithBrands(t, email, "Bolt", "Filler"))
		default:
			orders = append(orders, orderWithBrands(t, email, "Filler"))
		}
	}

	pairs := BuildBrandAffinity(orders)
	var acmeBolt *model.AffinityPair
	for i := range pairs {
		if pairs[i].BrandA == "Acme" && pairs[i].BrandB == "Bolt" {
			acmeBolt = &pairs[i]
		}
	}
	assert.NotNil(t, acmeBolt)
	assert.Equal(t, 25, acmeBolt.CoPurchaseCount)
	assert.Equal(t, 1.0, acmeBolt.Lift)
}

func TestBuildBrandAffinityPositiveLift(t *testing.T) {
	// Brands always bought together in a 10-customer universe.
	orders := make([]model.Order, 0, 10)
	for i := 0; i < 4; i++ {
		orders = append(orders, orderWithBrands(t, fmt.Sprintf("pair%d@example.com", i), "Salt", "Pepper"))
	}
	for i := 0; i < 6; i++ {
		orders = append(orders, orderWithBrands(t, fmt.Sprintf("other%d@example.com", i), "Filler"))
	}

	pairs := BuildBrandAffinity(orders)
	assert.Len(t, pairs, 1)
	assert.Equal(t, "Pepper", pairs[0].BrandA)
	assert.Equal(t, "Salt", pairs[0].BrandB)
	assert.Equal(t, 4, pairs[0].CoPurchaseCount)
	// 4 / (0.4 * 0.4 * 10) = 2.5
	assert.Equal(t, 2.5, pairs[0].Lift)
}

func TestBuildBrandAffinityOrderIndependent(t *testing.T) {
	forward := []model.Order{
		orderWithBrands(t, "a@example.com", "Acme", "Bolt"),
		orderWithBrands(t, "b@example.com", "Acme", "Bolt"),
		orderWithBrands(t, "c@example.com", "Acme", "Bolt"),
	}
	reversed := []model.Order{
		orderWithBrands(t, "c@example.com", "Bolt", "Acme"),
		orderWithBrands(t, "b@example.com", "Bolt", "Acme"),
		orderWithBrands(t, "a@example.com", "Bolt", "Acme"),
	}

	// Lift is symmetric: naming the brands in either order yields one pair
	// with identical numbers.
	assert.Equal(t, BuildBrandAffinity(forward), BuildBrandAffinity(reversed))
}

func TestBuildBrandAffinityThresholdAndEmpty(t *testing.T) {
	orders := []model.Order{
		orderWithBrands(t, "a@example.com", "Rare", "Pair"),
		orderWithBrands(t, "b@example.com", "Rare", "Pair"),
	}
	assert.Len(t, BuildBrandAffinity(orders), 0)
	assert.Len(t, BuildBrandAffinity(nil), 0)
}
