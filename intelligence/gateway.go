package intelligence

import (
	"sort"

	"storepulse/model/model"
	U "storepulse/util"
)

// minFirstOrderCount hides long-tail products that showed up in a couple of
// first orders by chance.
const minFirstOrderCount = 3

// BuildGatewayProducts finds the products that most often appear in a
// customer's first order and how those customers behaved afterwards. First
// order means the earliest by timestamp, lowest order id on a tie.
func BuildGatewayProducts(customers []model.Customer, orders []model.Order) []model.GatewayProduct {
	customersByEmail := make(map[string]*model.Customer, len(customers))
	for i := range customers {
		customersByEmail[customers[i].Email] = &customers[i]
	}

	firstOrder := make(map[string]*model.Order)
	for i := range orders {
		o := &orders[i]
		if o.CustomerEmail == "" {
			continue
		}
		cur, ok := firstOrder[o.CustomerEmail]
		if !ok || o.CreatedAt.Before(cur.CreatedAt) || (o.CreatedAt.Equal(cur.CreatedAt) && o.ID < cur.ID) {
			firstOrder[o.CustomerEmail] = o
		}
	}

	buyersByProduct := make(map[string]map[string]bool)
	for email, o := range firstOrder {
		for i := range o.LineItems {
			key := o.LineItems[i].ProductKey()
			if key == "" {
				continue
			}
			if buyersByProduct[key] == nil {
				buyersByProduct[key] = make(map[string]bool)
			}
			buyersByProduct[key][email] = true
		}
	}

	products := make([]model.GatewayProduct, 0, len(buyersByProduct))
	for product, buyers := range buyersByProduct {
		if len(buyers) < minFirstOrderCount {
			continue
		}
		repeated := 0
		totalSpend := 0.0
		for email := range buyers {
			c, ok := customersByEmail[email]
			if !ok {
				continue
			}
			if c.OrdersCount >= 2 {
				repeated++
			}
			totalSpend += c.TotalSpent
		}
		products = append(products, model.GatewayProduct{
			Product:         product,
			FirstOrderCount: len(buyers),
			RepeatRate:      U.SafePercentage(repeated, len(buyers)),
			AvgCustomerLTV:  U.RoundTo2Decimals(totalSpend / float64(len(buyers))),
		})
	}

	sort.Slice(products, func(a, b int) bool {
		if products[a].FirstOrderCount != products[b].FirstOrderCount {
			return products[a].FirstOrderCount > products[b].FirstOrderCount
		}
		return products[a].Product < products[b].Product
	})
	return products
}
