package intelligence

import (
	"sort"

	"storepulse/model/model"
	U "storepulse/util"
)

type geoKey struct {
	city    string
	state   string
	country string
}

// BuildGeoDistribution rolls customers up by city/state/country with revenue
// and order averages, highest revenue first.
func BuildGeoDistribution(customers []model.Customer) []model.GeoBucket {
	type geoAgg struct {
		customers int
		revenue   float64
		orders    int
	}
	byLocation := make(map[geoKey]*geoAgg)
	for i := range customers {
		c := &customers[i]
		key := geoKey{city: c.City, state: c.Province, country: c.Country}
		agg := byLocation[key]
		if agg == nil {
			agg = &geoAgg{}
			byLocation[key] = agg
		}
		agg.customers++
		agg.revenue += c.TotalSpent
		agg.orders += c.OrdersCount
	}

	buckets := make([]model.GeoBucket, 0, len(byLocation))
	for key, agg := range byLocation {
		buckets = append(buckets, model.GeoBucket{
			City:          key.city,
			State:         key.state,
			Country:       key.country,
			CustomerCount: agg.customers,
			TotalRevenue:  U.RoundTo2Decimals(agg.revenue),
			AvgOrders:     U.RoundTo1Decimal(float64(agg.orders) / float64(agg.customers)),
		})
	}

	sort.Slice(buckets, func(a, b int) bool {
		if buckets[a].TotalRevenue != buckets[b].TotalRevenue {
			return buckets[a].TotalRevenue > buckets[b].TotalRevenue
		}
		if buckets[a].Country != buckets[b].Country {
			return buckets[a].Country < buckets[b].Country
		}
		if buckets[a].State != buckets[b].State {
			return buckets[a].State < buckets[b].State
		}
		return buckets[a].City < buckets[b].City
	})
	return buckets
}
