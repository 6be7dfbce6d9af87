package intelligence

import (
	"sort"

	"storepulse/model/model"
	U "storepulse/util"
)

// minCoPurchaseCount filters brand pairs too rare to rank.
const minCoPurchaseCount = 3

// BuildBrandAffinity computes co-purchase counts and statistical lift between
// brand pairs across each customer's distinct brand set. Lift above 1 means
// the brands are bought together more often than independence predicts.
func BuildBrandAffinity(orders []model.Order) []model.AffinityPair {
	brandsByCustomer := make(map[string]map[string]bool)
	for i := range orders {
		o := &orders[i]
		if o.CustomerEmail == "" {
			continue
		}
		for j := range o.LineItems {
			brand := o.LineItems[j].Brand
			if brand == "" {
				continue
			}
			if brandsByCustomer[o.CustomerEmail] == nil {
				brandsByCustomer[o.CustomerEmail] = make(map[string]bool)
			}
			brandsByCustomer[o.CustomerEmail][brand] = true
		}
	}

	totalCustomers := len(brandsByCustomer)
	if totalCustomers == 0 {
		return nil
	}

	buyersPerBrand := make(map[string]int)
	coPurchases := make(map[[2]string]int)
	for _, brandSet := range brandsByCustomer {
		brands := make([]string, 0, len(brandSet))
		for brand := range brandSet {
			brands = append(brands, brand)
		}
		sort.Strings(brands)
		for a := 0; a < len(brands); a++ {
			buyersPerBrand[brands[a]]++
			for b := a + 1; b < len(brands); b++ {
				coPurchases[[2]string{brands[a], brands[b]}]++
			}
		}
	}

	pairs := make([]model.AffinityPair, 0, len(coPurchases))
	for pair, count := range coPurchases {
		if count < minCoPurchaseCount {
			continue
		}
		pA := float64(buyersPerBrand[pair[0]]) / float64(totalCustomers)
		pB := float64(buyersPerBrand[pair[1]]) / float64(totalCustomers)
		expected := pA * pB * float64(totalCustomers)
		if expected == 0 {
			continue
		}
		pairs = append(pairs, model.AffinityPair{
			BrandA:          pair[0],
			BrandB:          pair[1],
			CoPurchaseCount: count,
			Lift:            U.RoundTo2Decimals(float64(count) / expected),
		})
	}

	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].CoPurchaseCount != pairs[b].CoPurchaseCount {
			return pairs[a].CoPurchaseCount > pairs[b].CoPurchaseCount
		}
		if pairs[a].Lift != pairs[b].Lift {
			return pairs[a].Lift > pairs[b].Lift
		}
		if pairs[a].BrandA != pairs[b].BrandA {
			return pairs[a].BrandA < pairs[b].BrandA
		}
		return pairs[a].BrandB < pairs[b].BrandB
	})
	return pairs
}
