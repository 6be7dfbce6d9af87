package intelligence

import (
	"sort"
	"time"

	"storepulse/model/model"
	U "storepulse/util"
)

// BuildRFMProfiles scores every eligible customer on recency, frequency and
// monetary quintiles and assigns a segment. Eligible means at least one
// lifetime order and positive lifetime spend. Recency is derived from the
// order stream rather than any synced per-customer field, so a drifted
// customers table cannot skew the scores.
func BuildRFMProfiles(customers []model.Customer, orders []model.Order, nowTS time.Time) []model.RFMProfile {
	lastOrderAt := make(map[string]time.Time)
	for i := range orders {
		o := &orders[i]
		if o.CustomerEmail == "" {
			continue
		}
		if last, ok := lastOrderAt[o.CustomerEmail]; !ok || o.CreatedAt.After(last) {
			lastOrderAt[o.CustomerEmail] = o.CreatedAt
		}
	}

	profiles := make([]model.RFMProfile, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		if c.OrdersCount <= 0 || c.TotalSpent <= 0 {
			continue
		}
		days := model.RecencyNeverDays
		if last, ok := lastOrderAt[c.Email]; ok {
			days = U.DaysBetween(last, nowTS)
		}
		profiles = append(profiles, model.RFMProfile{
			Email:              c.Email,
			Name:               c.FullName(),
			OrdersCount:        c.OrdersCount,
			TotalSpent:         c.TotalSpent,
			DaysSinceLastOrder: days,
		})
	}

	assignQuintileScores(profiles)
	for i := range profiles {
		profiles[i].Segment = ClassifySegment(profiles[i].RScore, profiles[i].FScore, profiles[i].MScore)
	}
	return profiles
}

// assignQuintileScores ranks the profile set per dimension and maps ranks to
// quintiles 1..5. Recency sorts ascending on days-since-last-order and is
// inverted so the most recent fifth scores 5; frequency and monetary score 5
// on the highest-value fifth directly. Ties keep stream order (stable sort).
func assignQuintileScores(profiles []model.RFMProfile) {
	n := len(profiles)
	if n == 0 {
		return
	}

	byRecency := identityIndex(n)
	sort.SliceStable(byRecency, func(a, b int) bool {
		return profiles[byRecency[a]].DaysSinceLastOrder < profiles[byRecency[b]].DaysSinceLastOrder
	})
	for rank, i := range byRecency {
		profiles[i].RScore = 6 - quintileForRank(rank, n)
	}

	byFrequency := identityIndex(n)
	sort.SliceStable(byFrequency, func(a, b int) bool {
		return profiles[byFrequency[a]].OrdersCount < profiles[byFrequency[b]].OrdersCount
	})
	for rank, i := range byFrequency {
		profiles[i].FScore = quintileForRank(rank, n)
	}

	byMonetary := identityIndex(n)
	sort.SliceStable(byMonetary, func(a, b int) bool {
		return profiles[byMonetary[a]].TotalSpent < profiles[byMonetary[b]].TotalSpent
	})
	for rank, i := range byMonetary {
		profiles[i].MScore = quintileForRank(rank, n)
	}
}

// quintileForRank buckets a zero-based rank into 1..5. Integer math keeps the
// five buckets within one customer of each other in size.
func quintileForRank(rank, n int) int {
	q := rank*5/n + 1
	if q > 5 {
		q = 5
	}
	return q
}

func identityIndex(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
