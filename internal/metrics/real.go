package metrics

import (
	"fmt"
	"sort"
	"time"

	"organizerConsole/internal/models"
)

// RealSeries derives every series from the events themselves. Series the
// events carry no data for come back empty.
type RealSeries struct{}

var trMonths = [...]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"}

var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDay(raw string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), trMonths[t.Month()-1])
}

// Sales buckets revenue and sold tickets by event day, oldest first.
// Events with an unparsable date are left out.
func (RealSeries) Sales(events []models.Event, sel Selection) []models.SalesDataPoint {
	type bucket struct {
		amount  float64
		tickets int
	}

	buckets := make(map[time.Time]*bucket)
	for _, e := range selected(events, sel) {
		day, ok := parseEventDay(e.Date)
		if !ok {
			continue
		}

		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.amount += e.Revenue
		b.tickets += e.TicketsSold()
	}

	days := make([]time.Time, 0, len(buckets))
	for d := range buckets {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]models.SalesDataPoint, 0, len(days))
	for _, d := range days {
		out = append(out, models.SalesDataPoint{
			Date:    dayLabel(d),
			Amount:  buckets[d].amount,
			Tickets: buckets[d].tickets,
		})
	}

	return out
}

// TicketTypes sums sold tickets per ticket type name in first-seen order.
func (RealSeries) TicketTypes(events []models.Event, sel Selection) []models.Slice {
	index := make(map[string]int)
	out := make([]models.Slice, 0)

	for _, e := range selected(events, sel) {
		for _, t := range e.TicketTypes {
			i, ok := index[t.Name]
			if !ok {
				index[t.Name] = len(out)
				out = append(out, models.Slice{Name: t.Name, Value: t.Sold})
				continue
			}
			out[i].Value += t.Sold
		}
	}

	return out
}

func (RealSeries) Gender(_ []models.Event, _ Selection) []models.Slice {
	return []models.Slice{}
}

func (RealSeries) Age(_ []models.Event, _ Selection) []models.Slice {
	return []models.Slice{}
}

func (RealSeries) Audience(_ []models.Event, _ Selection) models.AudienceStats {
	return models.AudienceStats{
		Views:              "0",
		ViewsTrend:         models.TrendNeutral,
		ViewsChange:        "0.0",
		Conversion:         "0.0",
		ConversionTrend:    models.TrendNeutral,
		ConversionChange:   "0.0",
		NewCustomers:       "0",
		NewCustomersTrend:  models.TrendNeutral,
		NewCustomersChange: "0.0",
	}
}
