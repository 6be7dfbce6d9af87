package reports

import (
	"fmt"

	"storepulse/model/model"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// BuildDashboardWorkbook renders the intelligence payload as an XLSX
// workbook, one sheet per dashboard section.
func BuildDashboardWorkbook(dashboard model.IntelligenceDashboard) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeOverviewSheet(f, dashboard); err != nil {
		return nil, err
	}
	if err := writeSegmentsSheet(f, dashboard.RFMSegments); err != nil {
		return nil, err
	}
	if err := writeCohortSheet(f, dashboard.CohortRetention); err != nil {
		return nil, err
	}
	if err := writeGatewaySheet(f, dashboard.GatewayProducts); err != nil {
		return nil, err
	}
	if err := writeAffinitySheet(f, dashboard.BrandAffinity); err != nil {
		return nil, err
	}
	if err := writeGeoSheet(f, dashboard.GeoDistribution); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	f.NewSheet(sheet)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrapf(err, "failed to address row %d on %s", i+1, sheet)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write row %d on %s", i+1, sheet)
		}
	}
	return nil
}

func writeOverviewSheet(f *excelize.File, dashboard model.IntelligenceDashboard) error {
	kpis := dashboard.OverviewKPIs
	rows := [][]interface{}{
		{"Pulse", dashboard.Pulse.Status},
		{"Narrative", dashboard.Pulse.Narrative},
		{"Details", dashboard.Pulse.ProNarrative},
		{},
		{"Total customers", kpis.TotalCustomers},
		{"Active customers", kpis.ActiveCustomers},
		{"Avg orders", kpis.AvgOrders},
		{"Avg LTV", kpis.AvgLTV},
		{"New this month", kpis.NewThisMonth},
		{"Repeat rate %", kpis.RepeatRate},
		{"At-risk customers", kpis.AtRiskCount},
		{"Avg days between orders", kpis.AvgDaysBetween},
		{},
		{"30-day retention %", dashboard.RetentionKPIs.Retention30},
		{"90-day retention %", dashboard.RetentionKPIs.Retention90},
		{"Churn rate %", dashboard.RetentionKPIs.ChurnRate},
		{"Loyal avg orders", dashboard.RetentionKPIs.LoyalAvgOrders},
	}

	if url, err := RepeatCurveChartURL(dashboard.RepeatCurve); err != nil {
		// The workbook is still useful without the chart link.
		log.WithError(err).Warn("Skipping repeat curve chart in report.")
	} else {
		rows = append(rows, []interface{}{}, []interface{}{"Repeat curve chart", url})
	}

	return writeRows(f, "Overview", rows)
}

func writeSegmentsSheet(f *excelize.File, segments []model.SegmentSummary) error {
	rows := [][]interface{}{
		{"Segment", "Customers", "% of base", "Avg orders", "Avg spend", "Avg recency (days)", "Total revenue", "Recommended action"},
	}
	for _, s := range segments {
		rows = append(rows, []interface{}{
			string(s.Segment), s.Count, s.Pct, s.AvgOrders, s.AvgSpend, s.AvgRecency, s.TotalRevenue, s.Action,
		})
	}
	return writeRows(f, "Segments", rows)
}

func writeCohortSheet(f *excelize.File, retention model.CohortRetention) error {
	header := []interface{}{"Cohort", "Size"}
	for i := 0; i < 12; i++ {
		header = append(header, fmt.Sprintf("M%d", i))
	}
	rows := [][]interface{}{header}
	for _, row := range retention.Cohorts {
		line := []interface{}{row.Cohort, row.Size}
		for _, pct := range row.Retention {
			line = append(line, pct)
		}
		rows = append(rows, line)
	}
	return writeRows(f, "Cohorts", rows)
}

func writeGatewaySheet(f *excelize.File, products []model.GatewayProduct) error {
	rows := [][]interface{}{
		{"Product", "First-order customers", "Repeat rate %", "Avg customer LTV"},
	}
	for _, p := range products {
		rows = append(rows, []interface{}{p.Product, p.FirstOrderCount, p.RepeatRate, p.AvgCustomerLTV})
	}
	return writeRows(f, "Gateway Products", rows)
}

func writeAffinitySheet(f *excelize.File, pairs []model.AffinityPair) error {
	rows := [][]interface{}{
		{"Brand A", "Brand B", "Co-purchasers", "Lift"},
	}
	for _, p := range pairs {
		rows = append(rows, []interface{}{p.BrandA, p.BrandB, p.CoPurchaseCount, p.Lift})
	}
	return writeRows(f, "Brand Affinity", rows)
}

func writeGeoSheet(f *excelize.File, buckets []model.GeoBucket) error {
	rows := [][]interface{}{
		{"City", "State", "Country", "Customers", "Revenue", "Avg orders"},
	}
	for _, b := range buckets {
		rows = append(rows, []interface{}{b.City, b.State, b.Country, b.CustomerCount, b.TotalRevenue, b.AvgOrders})
	}
	return writeRows(f, "Geography", rows)
}
