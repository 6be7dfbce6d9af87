package intelligence

import (
	"storepulse/model/model"
	U "storepulse/util"
)

const loyalOrderThreshold = 3

// BuildRetentionKPIs derives retention and churn figures from the scored
// profiles. Working off profiles instead of raw customer fields keeps these
// numbers consistent with the recency the scorer actually used.
func BuildRetentionKPIs(profiles []model.RFMProfile) model.RetentionKPIs {
	kpis := model.RetentionKPIs{}
	if len(profiles) == 0 {
		return kpis
	}

	multiOrder, within30, within90 := 0, 0, 0
	churned := 0
	loyalCount, loyalOrders := 0, 0
	for i := range profiles {
		p := &profiles[i]
		if p.OrdersCount >= 2 {
			multiOrder++
			if p.DaysSinceLastOrder <= 30 {
				within30++
			}
			if p.DaysSinceLastOrder <= 90 {
				within90++
			}
		}
		if p.Segment == model.SegmentLost || p.Segment == model.SegmentHibernating {
			churned++
		}
		if p.OrdersCount >= loyalOrderThreshold {
			loyalCount++
			loyalOrders += p.OrdersCount
		}
	}

	kpis.Retention30 = U.SafePercentage(within30, multiOrder)
	kpis.Retention90 = U.SafePercentage(within90, multiOrder)
	kpis.ChurnRate = U.SafePercentage(churned, len(profiles))
	if loyalCount > 0 {
		kpis.LoyalAvgOrders = U.RoundTo1Decimal(float64(loyalOrders) / float64(loyalCount))
	}
	return kpis
}
