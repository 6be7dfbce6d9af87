package intelligence

import (
	"time"

	log "github.com/sirupsen/logrus"

	"storepulse/model/model"
)

// BuildDashboard runs the full scoring pass over one customer/order snapshot.
// The RFM profile set is computed exactly once here and handed to every
// consumer as a parameter; no component keeps state between invocations, so
// concurrent requests never share anything.
func BuildDashboard(customers []model.Customer, orders []model.Order, nowTS time.Time) model.IntelligenceDashboard {
	profiles := BuildRFMProfiles(customers, orders, nowTS)
	retentionKPIs := BuildRetentionKPIs(profiles)

	dashboard := model.IntelligenceDashboard{
		OverviewKPIs:     BuildOverviewKPIs(customers, profiles, orders, nowTS),
		RFMDistribution:  BuildRFMDistribution(profiles),
		RevenueBySegment: BuildRevenueBySegment(profiles),
		RFMSegments:      BuildSegmentSummaries(profiles),
		CohortRetention:  BuildCohortRetention(orders, nowTS),
		RepeatCurve:      BuildRepeatCurve(customers),
		RetentionKPIs:    retentionKPIs,
		GatewayProducts:  BuildGatewayProducts(customers, orders),
		BrandAffinity:    BuildBrandAffinity(orders),
		GeoDistribution:  BuildGeoDistribution(customers),
		Pulse:            BuildPulse(profiles, retentionKPIs),
	}

	log.WithFields(log.Fields{
		"customers": len(customers),
		"orders":    len(orders),
		"profiles":  len(profiles),
		"status":    dashboard.Pulse.Status,
	}).Info("Built intelligence dashboard.")
	return dashboard
}
