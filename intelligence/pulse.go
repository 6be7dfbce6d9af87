package intelligence

import (
	"fmt"

	"storepulse/model/model"
	U "storepulse/util"
)

func isAtRiskSegment(segment model.SegmentName) bool {
	return segment == model.SegmentAtRisk || segment == model.SegmentHibernating || segment == model.SegmentLost
}

// BuildPulse classifies the customer base health from the at-risk share and
// renders the summary narratives. Pure formatting over upstream numbers.
func BuildPulse(profiles []model.RFMProfile, kpis model.RetentionKPIs) model.Pulse {
	atRisk := 0
	champions := 0
	for i := range profiles {
		if isAtRiskSegment(profiles[i].Segment) {
			atRisk++
		}
		if profiles[i].Segment == model.SegmentChampions {
			champions++
		}
	}
	atRiskPct := U.SafePercentage(atRisk, len(profiles))

	status := model.PulseStatusThriving
	switch {
	case atRiskPct >= 40:
		status = model.PulseStatusCritical
	case atRiskPct >= 20:
		status = model.PulseStatusAtRisk
	case atRiskPct >= 10:
		status = model.PulseStatusStable
	}

	narrative := fmt.Sprintf(
		"Customer base status: %s. %d of %d scored customers (%.1f%%) sit in at-risk segments, while %d are champions.",
		status, atRisk, len(profiles), atRiskPct, champions)
	proNarrative := fmt.Sprintf(
		"30-day retention is %.1f%% and 90-day retention is %.1f%%. Churn-proxy segments hold %.1f%% of customers; loyal customers average %.1f orders.",
		kpis.Retention30, kpis.Retention90, kpis.ChurnRate, kpis.LoyalAvgOrders)

	return model.Pulse{
		Narrative:    narrative,
		Status:       status,
		ProNarrative: proNarrative,
	}
}
