package intelligence

import (
	"time"

	"storepulse/model/model"
	U "storepulse/util"
)

// CohortWindowMonths bounds both the number of cohorts reported and the
// length of each cohort's retention vector.
const CohortWindowMonths = 12

// BuildCohortRetention buckets customers by first-purchase calendar month and
// tracks, for each of the most recent 12 cohort months, the share of the
// cohort that placed at least one order in each subsequent month offset.
// Offsets beyond the data simply count nobody and yield 0.
func BuildCohortRetention(orders []model.Order, nowTS time.Time) model.CohortRetention {
	firstOrderAt := make(map[string]time.Time)
	activeMonths := make(map[string]map[string]bool)
	for i := range orders {
		o := &orders[i]
		if o.CustomerEmail == "" {
			continue
		}
		if first, ok := firstOrderAt[o.CustomerEmail]; !ok || o.CreatedAt.Before(first) {
			firstOrderAt[o.CustomerEmail] = o.CreatedAt
		}
		if activeMonths[o.CustomerEmail] == nil {
			activeMonths[o.CustomerEmail] = make(map[string]bool)
		}
		activeMonths[o.CustomerEmail][U.MonthKey(o.CreatedAt)] = true
	}

	cohortMembers := make(map[string][]string)
	for email, first := range firstOrderAt {
		key := U.MonthKey(first)
		cohortMembers[key] = append(cohortMembers[key], email)
	}

	currentMonth := U.BeginningOfMonth(nowTS)
	oldestMonth := U.AddMonths(currentMonth, -(CohortWindowMonths - 1))

	result := model.CohortRetention{Cohorts: make([]model.CohortRow, 0, CohortWindowMonths)}
	for offset := 0; offset < CohortWindowMonths; offset++ {
		cohortMonth := U.AddMonths(oldestMonth, offset)
		if cohortMonth.After(currentMonth) {
			break
		}
		members := cohortMembers[U.MonthKey(cohortMonth)]
		if len(members) == 0 {
			continue
		}

		retention := make([]float64, CohortWindowMonths)
		for monthIdx := 0; monthIdx < CohortWindowMonths; monthIdx++ {
			targetKey := U.MonthKey(U.AddMonths(cohortMonth, monthIdx))
			active := 0
			for _, email := range members {
				if activeMonths[email][targetKey] {
					active++
				}
			}
			retention[monthIdx] = U.SafePercentage(active, len(members))
		}

		result.Cohorts = append(result.Cohorts, model.CohortRow{
			Cohort:    U.MonthKey(cohortMonth),
			Size:      len(members),
			Retention: retention,
		})

		observable := U.MonthsBetween(cohortMonth, currentMonth) + 1
		if observable > CohortWindowMonths {
			observable = CohortWindowMonths
		}
		if observable > result.MaxMonths {
			result.MaxMonths = observable
		}
	}
	return result
}
