package intelligence

import (
	"fmt"
	"testing"

	"storepulse/model/model"

	"github.com/stretchr/testify/assert"
)

func snapshotFixture(t *testing.T) ([]model.Customer, []model.Order) {
	createdAt := testTime(t, "2026-05-01T00:00:00Z")
	customers := make([]model.Customer, 0, 20)
	orders := make([]model.Order, 0, 40)
	for i := 0; i < 20; i++ {
		email := fmt.Sprintf("c%d@example.com", i)
		customers = append(customers, model.Customer{
			ID:          int64(i + 1),
			Email:       email,
			FirstName:   "Customer",
			LastName:    fmt.Sprintf("%d", i),
			OrdersCount: 1 + i%4,
			TotalSpent:  float64(40 + i*17),
			City:        "Austin",
			Province:    "TX",
			Country:     "US",
			CreatedAt:   createdAt,
		})
		firstOrderAt := testTime(t, "2026-06-02T00:00:00Z").AddDate(0, 0, i)
		orders = append(orders, model.Order{
			ID: int64(i*2 + 1), CustomerEmail: email, TotalPrice: 40, CreatedAt: firstOrderAt,
			LineItems: []model.OrderLineItem{
				{Title: "Starter Kit", Brand: "Acme"},
				{Title: "Grinder", Brand: "Bolt"},
			},
		})
		if i%4 != 0 {
			orders = append(orders, model.Order{
				ID: int64(i*2 + 2), CustomerEmail: email, TotalPrice: 25, CreatedAt: firstOrderAt.AddDate(0, 1, 0),
				LineItems: []model.OrderLineItem{{Title: "Refill Pack", Brand: "Acme"}},
			})
		}
	}
	return customers, orders
}

func TestBuildDashboardIdempotent(t *testing.T) {
	now := testTime(t, "2026-08-15T00:00:00Z")
	customers, orders := snapshotFixture(t)

	first := BuildDashboard(customers, orders, now)
	second := BuildDashboard(customers, orders, now)
	assert.Equal(t, first, second)
}

func TestBuildDashboardSegmentsPartitionProfiles(t *testing.T) {
	now := testTime(t, "2026-08-15T00:00:00Z")
	customers, orders := snapshotFixture(t)

	dashboard := BuildDashboard(customers, orders, now)

	total := 0
	for _, entry := range dashboard.RFMDistribution {
		total += entry.Count
	}
	assert.Equal(t, len(customers), total)
	assert.Len(t, dashboard.RFMDistribution, 10)

	summaryTotal := 0
	for _, summary := range dashboard.RFMSegments {
		summaryTotal += summary.Count
	}
	assert.Equal(t, len(customers), summaryTotal)
}

func TestBuildDashboardPopulatesAllSections(t *testing.T) {
	now := testTime(t, "2026-08-15T00:00:00Z")
	customers, orders := snapshotFixture(t)

	dashboard := BuildDashboard(customers, orders, now)
	assert.NotEmpty(t, dashboard.Pulse.Status)
	assert.Equal(t, 20, dashboard.OverviewKPIs.TotalCustomers)
	assert.NotEmpty(t, dashboard.RevenueBySegment)
	assert.NotEmpty(t, dashboard.CohortRetention.Cohorts)
	assert.Len(t, dashboard.RepeatCurve, RepeatCurveMaxOrders)
	assert.NotEmpty(t, dashboard.GatewayProducts)
	assert.NotEmpty(t, dashboard.BrandAffinity)
	assert.NotEmpty(t, dashboard.GeoDistribution)
}

func TestBuildDashboardEmptySnapshot(t *testing.T) {
	now := testTime(t, "2026-08-15T00:00:00Z")

	dashboard := BuildDashboard(nil, nil, now)
	assert.Equal(t, model.PulseStatusThriving, dashboard.Pulse.Status)
	assert.Equal(t, 0, dashboard.OverviewKPIs.TotalCustomers)
	assert.Equal(t, 0.0, dashboard.OverviewKPIs.RepeatRate)
	assert.Len(t, dashboard.RFMSegments, 0)
	assert.Len(t, dashboard.CohortRetention.Cohorts, 0)
	assert.Len(t, dashboard.RepeatCurve, 0)
	assert.Len(t, dashboard.GatewayProducts, 0)
	assert.Len(t, dashboard.BrandAffinity, 0)
	assert.Len(t, dashboard.GeoDistribution, 0)
	assert.Equal(t, model.RetentionKPIs{}, dashboard.RetentionKPIs)
	// Distribution keeps its stable ten-segment shape even when empty.
	assert.Len(t, dashboard.RFMDistribution, 10)
	for _, entry := range dashboard.RFMDistribution {
		assert.Equal(t, 0, entry.Count)
	}
}
