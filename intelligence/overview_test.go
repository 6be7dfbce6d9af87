package intelligence

import (
	"testing"

	"storepulse/model/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildOverviewKPIs(t *testing.T) {
	now := testTime(t, "2026-08-15T00:00:00Z")

	customers := []model.Customer{
		{Email: "a@example.com", OrdersCount: 3, TotalSpent: 300, CreatedAt: testTime(t, "2026-08-03T00:00:00Z")},
		{Email: "b@example.com", OrdersCount: 1, TotalSpent: 50, CreatedAt: testTime(t, "2026-02-01T00:00:00Z")},
		{Email: "c@example.com", OrdersCount: 2, TotalSpent: 100, CreatedAt: testTime(t, "2025-11-20T00:00:00Z")},
		{Email: "d@example.com", OrdersCount: 0, TotalSpent: 0, CreatedAt: testTime(t, "2026-08-10T00:00:00Z")},
	}
	orders := []model.Order{
		{CustomerEmail: "a@example.com", CreatedAt: testTime(t, "2026-06-01T00:00:00Z")},
		{CustomerEmail: "a@example.com", CreatedAt: testTime(t, "2026-07-01T00:00:00Z")},
		{CustomerEmail: "a@example.com", CreatedAt: testTime(t, "2026-08-10T00:00:00Z")},
		{CustomerEmail: "b@example.com", CreatedAt: testTime(t, "2026-02-02T00:00:00Z")},
		{CustomerEmail: "c@example.com", CreatedAt: testTime(t, "2025-12-01T00:00:00Z")},
		{CustomerEmail: "c@example.com", CreatedAt: testTime(t, "2025-12-21T00:00:00Z")},
	}
	profiles := BuildRFMProfiles(customers, orders, now)

	kpis := BuildOverviewKPIs(customers, profiles, orders, now)
	assert.Equal(t, 4, kpis.TotalCustomers)
	assert.Equal(t, 1.5, kpis.AvgOrders)
	assert.Equal(t, 112.5, kpis.AvgLTV)
	// a and d were created in August 2026.
	assert.Equal(t, 2, kpis.NewThisMonth)
	// a and c ordered more than once, out of three purchasers.
	assert.Equal(t, 66.7, kpis.RepeatRate)
	// Only a ordered within the last 90 days.
	assert.Equal(t, 1, kpis.ActiveCustomers)
	// a: 70 days across 2 gaps = 35; c: 20 days across 1 gap = 20.
	assert.Equal(t, 27.5, kpis.AvgDaysBetween)
}

func TestBuildOverviewKPIsEmpty(t *testing.T) {
	now := testTime(t, "2026-08-15T00:00:00Z")
	kpis := BuildOverviewKPIs(nil, nil, nil, now)
	assert.Equal(t, model.OverviewKPIs{}, kpis)
}
