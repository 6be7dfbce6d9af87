package intelligence

import (
	"time"

	"storepulse/model/model"
	U "storepulse/util"
)

// activeWindowDays bounds how far back a last order can be for the customer
// to still count as active.
const activeWindowDays = 90

// BuildOverviewKPIs computes the headline dashboard numbers over the full
// customer snapshot plus the scored profile set.
func BuildOverviewKPIs(customers []model.Customer, profiles []model.RFMProfile, orders []model.Order, nowTS time.Time) model.OverviewKPIs {
	kpis := model.OverviewKPIs{TotalCustomers: len(customers)}
	if len(customers) == 0 {
		return kpis
	}

	monthStart := U.BeginningOfMonth(nowTS)
	totalOrders := 0
	totalSpent := 0.0
	purchasing := 0
	repeaters := 0
	for i := range customers {
		c := &customers[i]
		totalOrders += c.OrdersCount
		totalSpent += c.TotalSpent
		if c.OrdersCount >= 1 {
			purchasing++
		}
		if c.OrdersCount >= 2 {
			repeaters++
		}
		if !c.CreatedAt.Before(monthStart) {
			kpis.NewThisMonth++
		}
	}
	kpis.AvgOrders = U.RoundTo1Decimal(float64(totalOrders) / float64(len(customers)))
	kpis.AvgLTV = U.RoundTo2Decimals(totalSpent / float64(len(customers)))
	kpis.RepeatRate = U.SafePercentage(repeaters, purchasing)

	for i := range profiles {
		if profiles[i].DaysSinceLastOrder <= activeWindowDays {
			kpis.ActiveCustomers++
		}
		if isAtRiskSegment(profiles[i].Segment) {
			kpis.AtRiskCount++
		}
	}

	kpis.AvgDaysBetween = averageDaysBetweenOrders(orders)
	return kpis
}

// averageDaysBetweenOrders averages each repeat customer's purchase cadence:
// the span from first to last order divided by the gaps between them.
func averageDaysBetweenOrders(orders []model.Order) float64 {
	type span struct {
		first time.Time
		last  time.Time
		count int
	}
	spans := make(map[string]*span)
	for i := range orders {
		o := &orders[i]
		if o.CustomerEmail == "" {
			continue
		}
		s := spans[o.CustomerEmail]
		if s == nil {
			spans[o.CustomerEmail] = &span{first: o.CreatedAt, last: o.CreatedAt, count: 1}
			continue
		}
		if o.CreatedAt.Before(s.first) {
			s.first = o.CreatedAt
		}
		if o.CreatedAt.After(s.last) {
			s.last = o.CreatedAt
		}
		s.count++
	}

	totalDays := 0.0
	repeaters := 0
	for _, s := range spans {
		if s.count < 2 {
			continue
		}
		totalDays += float64(U.DaysBetween(s.first, s.last)) / float64(s.count-1)
		repeaters++
	}
	if repeaters == 0 {
		return 0
	}
	return U.RoundTo1Decimal(totalDays / float64(repeaters))
}
