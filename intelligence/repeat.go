package intelligence

import (
	"storepulse/model/model"
	U "storepulse/util"
)

// RepeatCurveMaxOrders caps the repeat purchase curve at the tenth order.
const RepeatCurveMaxOrders = 10

// BuildRepeatCurve computes, for N in 1..10, the share of purchasing
// customers that reached at least N orders. Non-increasing by construction.
func BuildRepeatCurve(customers []model.Customer) []model.RepeatCurvePoint {
	base := 0
	for i := range customers {
		if customers[i].OrdersCount >= 1 {
			base++
		}
	}
	if base == 0 {
		return nil
	}

	curve := make([]model.RepeatCurvePoint, 0, RepeatCurveMaxOrders)
	for n := 1; n <= RepeatCurveMaxOrders; n++ {
		reached := 0
		for i := range customers {
			if customers[i].OrdersCount >= n {
				reached++
			}
		}
		curve = append(curve, model.RepeatCurvePoint{
			OrderNumber: n,
			Customers:   reached,
			Pct:         U.SafePercentage(reached, base),
		})
	}
	return curve
}
