package intelligence

import (
	"storepulse/model/model"
)

type segmentRule struct {
	segment model.SegmentName
	matches func(r, f, m int) bool
}

// segmentRules is evaluated top to bottom, first match wins. The order is
// load-bearing: Potential Loyalist must be checked before Promising, and the
// 2<=r<=3 rules must run before the r<=2 rules.
var segmentRules = []segmentRule{
	{model.SegmentChampions, func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }},
	{model.SegmentLoyal, func(r, f, m int) bool { return f >= 3 && m >= 3 }},
	{model.SegmentPotentialLoyalist, func(r, f, m int) bool { return r >= 3 && f >= 2 && m >= 2 }},
	{model.SegmentPromising, func(r, f, m int) bool { return r >= 4 && f <= 2 && f != 1 }},
	{model.SegmentNewCustomers, func(r, f, m int) bool { return r >= 4 && f == 1 }},
	{model.SegmentNeedAttention, func(r, f, m int) bool { return r >= 2 && r <= 3 && f >= 2 && m >= 2 }},
	{model.SegmentAboutToSleep, func(r, f, m int) bool { return r >= 2 && r <= 3 && f <= 2 }},
	{model.SegmentAtRisk, func(r, f, m int) bool { return r <= 2 && f >= 3 }},
	{model.SegmentHibernating, func(r, f, m int) bool { return r <= 2 && f <= 2 && m >= 2 }},
}

// ClassifySegment maps an (r, f, m) score triple to its segment. Total over
// all triples in [1,5]^3; anything no rule claims is Lost.
func ClassifySegment(r, f, m int) model.SegmentName {
	for _, rule := range segmentRules {
		if rule.matches(r, f, m) {
			return rule.segment
		}
	}
	return model.SegmentLost
}
