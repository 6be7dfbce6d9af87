package model

// SegmentName is one of the ten RFM segments. Segments are never persisted;
// they are recomputed from (r, f, m) scores on every dashboard build.
type SegmentName string

const (
	SegmentChampions         SegmentName = "Champions"
	SegmentLoyal             SegmentName = "Loyal"
	SegmentPotentialLoyalist SegmentName = "Potential Loyalist"
	SegmentPromising         SegmentName = "Promising"
	SegmentNewCustomers      SegmentName = "New Customers"
	SegmentNeedAttention     SegmentName = "Need Attention"
	SegmentAboutToSleep      SegmentName = "About to Sleep"
	SegmentAtRisk            SegmentName = "At Risk"
	SegmentHibernating       SegmentName = "Hibernating"
	SegmentLost              SegmentName = "Lost"
)

// SegmentOrder is the canonical display order, best to worst.
var SegmentOrder = []SegmentName{
	SegmentChampions,
	SegmentLoyal,
	SegmentPotentialLoyalist,
	SegmentPromising,
	SegmentNewCustomers,
	SegmentNeedAttention,
	SegmentAboutToSleep,
	SegmentAtRisk,
	SegmentHibernating,
	SegmentLost,
}

type SegmentMeta struct {
	Color       string `json:"color"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

var SegmentCatalog = map[SegmentName]SegmentMeta{
	SegmentChampions: {
		Color:       "#10B981",
		Description: "Bought recently, buy often and spend the most.",
		Action:      "Reward them. They can become early adopters and brand advocates.",
	},
	SegmentLoyal: {
		Color:       "#34D399",
		Description: "Buy regularly with solid spend. Responsive to promotions.",
		Action:      "Upsell higher value products and ask for reviews.",
	},
	SegmentPotentialLoyalist: {
		Color:       "#6EE7B7",
		Description: "Recent customers with average frequency and spend.",
		Action:      "Offer a membership or loyalty program to deepen the habit.",
	},
	SegmentPromising: {
		Color:       "#60A5FA",
		Description: "Recent shoppers who have not bought often yet.",
		Action:      "Create brand awareness and offer free trials.",
	},
	SegmentNewCustomers: {
		Color:       "#93C5FD",
		Description: "Bought for the first time very recently.",
		Action:      "Provide onboarding support and early success moments.",
	},
	SegmentNeedAttention: {
		Color:       "#FBBF24",
		Description: "Above average recency, frequency and spend, but slipping.",
		Action:      "Make limited time offers based on past purchases.",
	},
	SegmentAboutToSleep: {
		Color:       "#F59E0B",
		Description: "Below average recency and frequency. Will lapse without action.",
		Action:      "Share valuable resources and recommend popular products.",
	},
	SegmentAtRisk: {
		Color:       "#F87171",
		Description: "Spent big and purchased often, but long ago.",
		Action:      "Send personalized reactivation emails and offer renewals.",
	},
	SegmentHibernating: {
		Color:       "#EF4444",
		Description: "Last purchase was long ago with few orders.",
		Action:      "Offer other relevant products and special discounts.",
	},
	SegmentLost: {
		Color:       "#B91C1C",
		Description: "Lowest recency, frequency and spend.",
		Action:      "Revive interest with a reach-out campaign, otherwise ignore.",
	},
}

// RecencyNeverDays is the sentinel for customers whose profile says they have
// ordered but whose orders never reached the order log. They sort to worst
// recency instead of failing the build.
const RecencyNeverDays = 9999

// RFMProfile is the per-customer scoring result. Built fresh on every
// dashboard computation and discarded with the response.
type RFMProfile struct {
	Email              string      `json:"email"`
	Name               string      `json:"name"`
	OrdersCount        int         `json:"orders_count"`
	TotalSpent         float64     `json:"total_spent"`
	DaysSinceLastOrder int         `json:"days_since_last_order"`
	RScore             int         `json:"r_score"`
	FScore             int         `json:"f_score"`
	MScore             int         `json:"m_score"`
	Segment            SegmentName `json:"segment"`
}

type Pulse struct {
	Narrative    string `json:"narrative"`
	Status       string `json:"status"`
	ProNarrative string `json:"pro_narrative"`
}

const (
	PulseStatusCritical = "Critical"
	PulseStatusAtRisk   = "At Risk"
	PulseStatusStable   = "Stable"
	PulseStatusThriving = "Thriving"
)

type OverviewKPIs struct {
	TotalCustomers  int     `json:"total_customers"`
	ActiveCustomers int     `json:"active_customers"`
	AvgOrders       float64 `json:"avg_orders"`
	AvgLTV          float64 `json:"avg_ltv"`
	NewThisMonth    int     `json:"new_this_month"`
	RepeatRate      float64 `json:"repeat_rate"`
	AtRiskCount     int     `json:"at_risk_count"`
	AvgDaysBetween  float64 `json:"avg_days_between"`
}

type RFMDistributionEntry struct {
	Segment SegmentName `json:"segment"`
	Count   int         `json:"count"`
	Pct     float64     `json:"pct"`
	Color   string      `json:"color"`
}

type SegmentRevenue struct {
	Segment SegmentName `json:"segment"`
	Revenue float64     `json:"revenue"`
	Color   string      `json:"color"`
}

type SegmentSummary struct {
	Segment      SegmentName `json:"segment"`
	Count        int         `json:"count"`
	Pct          float64     `json:"pct"`
	AvgOrders    float64     `json:"avg_orders"`
	AvgSpend     float64     `json:"avg_spend"`
	AvgRecency   float64     `json:"avg_recency"`
	TotalRevenue float64     `json:"total_revenue"`
	Description  string      `json:"description"`
	Action       string      `json:"action"`
}

// CohortRow is one first-purchase-month cohort with its 12-offset retention
// vector. Retention[0] is the cohort's own month and is always 100 for a
// non-empty cohort.
type CohortRow struct {
	Cohort    string    `json:"cohort"`
	Size      int       `json:"size"`
	Retention []float64 `json:"retention"`
}

type CohortRetention struct {
	Cohorts   []CohortRow `json:"cohorts"`
	MaxMonths int         `json:"max_months"`
}

type RepeatCurvePoint struct {
	OrderNumber int     `json:"order_number"`
	Customers   int     `json:"customers"`
	Pct         float64 `json:"pct"`
}

type RetentionKPIs struct {
	Retention30    float64 `json:"retention_30"`
	Retention90    float64 `json:"retention_90"`
	ChurnRate      float64 `json:"churn_rate"`
	LoyalAvgOrders float64 `json:"loyal_avg_orders"`
}

type GatewayProduct struct {
	Product         string  `json:"product"`
	FirstOrderCount int     `json:"first_order_count"`
	RepeatRate      float64 `json:"repeat_rate"`
	AvgCustomerLTV  float64 `json:"avg_customer_ltv"`
}

// AffinityPair is an unordered brand pair; BrandA sorts before BrandB so the
// same pair is always reported the same way.
type AffinityPair struct {
	BrandA          string  `json:"brand_a"`
	BrandB          string  `json:"brand_b"`
	CoPurchaseCount int     `json:"co_purchase_count"`
	Lift            float64 `json:"lift"`
}

type GeoBucket struct {
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	CustomerCount int     `json:"customer_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrders     float64 `json:"avg_orders"`
}

// IntelligenceDashboard is the full payload returned to the presentation
// layer for one dashboard request.
type IntelligenceDashboard struct {
	Pulse            Pulse                  `json:"pulse"`
	OverviewKPIs     OverviewKPIs           `json:"overview_kpis"`
	RFMDistribution  []RFMDistributionEntry `json:"rfm_distribution"`
	RevenueBySegment []SegmentRevenue       `json:"revenue_by_segment"`
	RFMSegments      []SegmentSummary       `json:"rfm_segments"`
	CohortRetention  CohortRetention        `json:"cohort_retention"`
	RepeatCurve      []RepeatCurvePoint     `json:"repeat_curve"`
	RetentionKPIs    RetentionKPIs          `json:"retention_kpis"`
	GatewayProducts  []GatewayProduct       `json:"gateway_products"`
	BrandAffinity    []AffinityPair         `json:"brand_affinity"`
	GeoDistribution  []GeoBucket            `json:"geo_distribution"`
}
