package intelligence

import (
	"storepulse/model/model"
	U "storepulse/util"
)

// BuildRFMDistribution reports profile counts per segment in canonical order.
// Every segment appears, zero or not, so charts keep a stable shape.
func BuildRFMDistribution(profiles []model.RFMProfile) []model.RFMDistributionEntry {
	counts := make(map[model.SegmentName]int)
	for i := range profiles {
		counts[profiles[i].Segment]++
	}

	entries := make([]model.RFMDistributionEntry, 0, len(model.SegmentOrder))
	for _, segment := range model.SegmentOrder {
		entries = append(entries, model.RFMDistributionEntry{
			Segment: segment,
			Count:   counts[segment],
			Pct:     U.SafePercentage(counts[segment], len(profiles)),
			Color:   model.SegmentCatalog[segment].Color,
		})
	}
	return entries
}

// BuildRevenueBySegment sums lifetime spend per segment, skipping segments
// with no customers.
func BuildRevenueBySegment(profiles []model.RFMProfile) []model.SegmentRevenue {
	revenue := make(map[model.SegmentName]float64)
	for i := range profiles {
		revenue[profiles[i].Segment] += profiles[i].TotalSpent
	}

	entries := make([]model.SegmentRevenue, 0, len(revenue))
	for _, segment := range model.SegmentOrder {
		if _, ok := revenue[segment]; !ok {
			continue
		}
		entries = append(entries, model.SegmentRevenue{
			Segment: segment,
			Revenue: U.RoundTo2Decimals(revenue[segment]),
			Color:   model.SegmentCatalog[segment].Color,
		})
	}
	return entries
}

// BuildSegmentSummaries aggregates per-segment averages for the segment
// detail table. Only populated segments are reported.
func BuildSegmentSummaries(profiles []model.RFMProfile) []model.SegmentSummary {
	type segmentAgg struct {
		count   int
		orders  int
		spend   float64
		recency int
	}
	aggs := make(map[model.SegmentName]*segmentAgg)
	for i := range profiles {
		p := &profiles[i]
		agg := aggs[p.Segment]
		if agg == nil {
			agg = &segmentAgg{}
			aggs[p.Segment] = agg
		}
		agg.count++
		agg.orders += p.OrdersCount
		agg.spend += p.TotalSpent
		agg.recency += p.DaysSinceLastOrder
	}

	summaries := make([]model.SegmentSummary, 0, len(aggs))
	for _, segment := range model.SegmentOrder {
		agg, ok := aggs[segment]
		if !ok {
			continue
		}
		meta := model.SegmentCatalog[segment]
		summaries = append(summaries, model.SegmentSummary{
			Segment:      segment,
			Count:        agg.count,
			Pct:          U.SafePercentage(agg.count, len(profiles)),
			AvgOrders:    U.RoundTo1Decimal(float64(agg.orders) / float64(agg.count)),
			AvgSpend:     U.RoundTo2Decimals(agg.spend / float64(agg.count)),
			AvgRecency:   U.RoundTo1Decimal(float64(agg.recency) / float64(agg.count)),
			TotalRevenue: U.RoundTo2Decimals(agg.spend),
			Description:  meta.Description,
			Action:       meta.Action,
		})
	}
	return summaries
}
