package metrics

import (
	"fmt"
	"math"
	"strconv"

	"organizerConsole/internal/models"
)

// DemoSeries serves fixed illustrative series. For a selected event the
// baseline is scaled by a per-event factor so the charts visibly change;
// the numbers do not come from the event. The ticket type split of a selected
// event is the only series read from real data.
type DemoSeries struct{}

var demoSales = []models.SalesDataPoint{
	{Date: "01 Ağu", Amount: 12500, Tickets: 45},
	{Date: "05 Ağu", Amount: 18900, Tickets: 68},
	{Date: "10 Ağu", Amount: 15600, Tickets: 52},
	{Date: "15 Ağu", Amount: 28400, Tickets: 95},
	{Date: "20 Ağu", Amount: 32100, Tickets: 110},
	{Date: "25 Ağu", Amount: 24500, Tickets: 82},
	{Date: "30 Ağu", Amount: 45200, Tickets: 150},
}

var demoTicketTypes = []models.Slice{
	{Name: "Genel Giriş", Value: 2400},
	{Name: "VIP", Value: 456},
	{Name: "Sahne Önü", Value: 120},
	{Name: "Öğrenci", Value: 890},
}

var noData = []models.Slice{{Name: "Veri Yok", Value: 1}}

var demoGender = map[string][]models.Slice{
	"1": {{Name: "Kadın", Value: 62}, {Name: "Erkek", Value: 38}},
	"2": {{Name: "Kadın", Value: 25}, {Name: "Erkek", Value: 75}},
}

var demoGenderDefault = []models.Slice{{Name: "Kadın", Value: 55}, {Name: "Erkek", Value: 45}}

var demoAge = map[string][]models.Slice{
	"1": {{Name: "18-24", Value: 55}, {Name: "25-34", Value: 30}, {Name: "35-44", Value: 10}, {Name: "45+", Value: 5}},
	"2": {{Name: "18-24", Value: 15}, {Name: "25-34", Value: 45}, {Name: "35-44", Value: 30}, {Name: "45+", Value: 10}},
}

var demoAgeDefault = []models.Slice{
	{Name: "18-24", Value: 35}, {Name: "25-34", Value: 42}, {Name: "35-44", Value: 15}, {Name: "45+", Value: 8},
}

var demoAudienceAll = models.AudienceStats{
	Views:              "124.5K",
	ViewsTrend:         models.TrendUp,
	ViewsChange:        "18.2",
	Conversion:         "4.8",
	ConversionTrend:    models.TrendDown,
	ConversionChange:   "1.2",
	NewCustomers:       "890",
	NewCustomersTrend:  models.TrendUp,
	NewCustomersChange: "12.5",
}

func demoFactor(id string) float64 {
	switch id {
	case "1":
		return 0.6
	case "2":
		return 0.3
	default:
		return 0.15
	}
}

func (DemoSeries) Sales(_ []models.Event, sel Selection) []models.SalesDataPoint {
	out := make([]models.SalesDataPoint, len(demoSales))
	copy(out, demoSales)

	if sel.IsAll() {
		return out
	}

	f := demoFactor(string(sel))
	for i := range out {
		out[i].Amount = math.Round(out[i].Amount * f)
		out[i].Tickets = int(math.Round(float64(out[i].Tickets) * f))
	}

	return out
}

func (DemoSeries) TicketTypes(events []models.Event, sel Selection) []models.Slice {
	if sel.IsAll() {
		return cloneSlices(demoTicketTypes)
	}

	e, ok := find(events, string(sel))
	if !ok || len(e.TicketTypes) == 0 {
		return cloneSlices(noData)
	}

	out := make([]models.Slice, 0, len(e.TicketTypes))
	for _, t := range e.TicketTypes {
		out = append(out, models.Slice{Name: t.Name, Value: t.Sold})
	}

	return out
}

func (DemoSeries) Gender(_ []models.Event, sel Selection) []models.Slice {
	if s, ok := demoGender[string(sel)]; ok {
		return cloneSlices(s)
	}

	return cloneSlices(demoGenderDefault)
}

func (DemoSeries) Age(_ []models.Event, sel Selection) []models.Slice {
	if s, ok := demoAge[string(sel)]; ok {
		return cloneSlices(s)
	}

	return cloneSlices(demoAgeDefault)
}

func (DemoSeries) Audience(_ []models.Event, sel Selection) models.AudienceStats {
	if sel.IsAll() {
		return demoAudienceAll
	}

	seed := demoSeed(string(sel))
	s := float64(seed)

	viewsTrend, conversionTrend := models.TrendDown, models.TrendUp
	if seed%2 == 0 {
		viewsTrend, conversionTrend = models.TrendUp, models.TrendDown
	}

	return models.AudienceStats{
		Views:              fmt.Sprintf("%.1fK", s*15.2+10),
		ViewsTrend:         viewsTrend,
		ViewsChange:        fmt.Sprintf("%.1f", s*2.5),
		Conversion:         fmt.Sprintf("%.1f", s*0.8+2),
		ConversionTrend:    conversionTrend,
		ConversionChange:   fmt.Sprintf("%.1f", s*0.4),
		NewCustomers:       strconv.Itoa(seed*120 + 50),
		NewCustomersTrend:  models.TrendUp,
		NewCustomersChange: fmt.Sprintf("%.1f", s*3.2),
	}
}

// maxDemoSeed caps the seed so long numeric ids cannot overflow the
// derived figures.
const maxDemoSeed = math.MaxInt32

// demoSeed reads the leading digits of id, saturating at maxDemoSeed. Ids
// without them, or whose number is zero, seed with their length.
func demoSeed(id string) int {
	n, end := 0, 0
	for end < len(id) && id[end] >= '0' && id[end] <= '9' {
		if n <= maxDemoSeed {
			n = n*10 + int(id[end]-'0')
		}
		end++
	}

	if n > maxDemoSeed {
		n = maxDemoSeed
	}

	if n == 0 {
		return len(id)
	}

	return n
}

func cloneSlices(in []models.Slice) []models.Slice {
	out := make([]models.Slice, len(in))
	copy(out, in)

	return out
}
