package models

type DashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TicketsSold    int     `json:"ticketsSold"`
	ActiveEvents   int     `json:"activeEvents"`
	AvgTicketPrice int64   `json:"avgTicketPrice"`
}

type SalesDataPoint struct {
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
	Tickets int     `json:"tickets"`
}

// Slice is one named share of a pie or bar chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

type AudienceStats struct {
	Views              string `json:"views"`
	ViewsTrend         Trend  `json:"viewsTrend"`
	ViewsChange        string `json:"viewsChange"`
	Conversion         string `json:"conversion"`
	ConversionTrend    Trend  `json:"conversionTrend"`
	ConversionChange   string `json:"conversionChange"`
	NewCustomers       string `json:"newCustomers"`
	NewCustomersTrend  Trend  `json:"newCustomersTrend"`
	NewCustomersChange string `json:"newCustomersChange"`
}

type AnalyticsStats struct {
	Audience    AudienceStats    `json:"audience"`
	Sales       []SalesDataPoint `json:"sales"`
	TicketTypes []Slice          `json:"ticketTypes"`
	Gender      []Slice          `json:"gender"`
	Age         []Slice          `json:"age"`
}

// TicketSummary backs the "X / Y tickets" cell of the event list.
type TicketSummary struct {
	Sold  int    `json:"sold"`
	Quota int    `json:"quota"`
	Label string `json:"label"`
	// FillPercent is capped at 100.
	FillPercent float64 `json:"fillPercent"`
	// Oversold is informational only, sold > quota is never rejected.
	Oversold bool `json:"oversold,omitempty"`
}
