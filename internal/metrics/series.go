package metrics

import (
	"fmt"

	"organizerConsole/internal/models"
)

const (
	SeriesReal = "real"
	SeriesDemo = "demo"
)

// SeriesSource produces the chart series for a selection.
type SeriesSource interface {
	Sales(events []models.Event, sel Selection) []models.SalesDataPoint
	TicketTypes(events []models.Event, sel Selection) []models.Slice
	Gender(events []models.Event, sel Selection) []models.Slice
	Age(events []models.Event, sel Selection) []models.Slice
	Audience(events []models.Event, sel Selection) models.AudienceStats
}

func NewSeriesSource(mode string) (SeriesSource, error) {
	switch mode {
	case "", SeriesReal:
		return RealSeries{}, nil
	case SeriesDemo:
		return DemoSeries{}, nil
	default:
		return nil, fmt.Errorf("unknown series mode %q", mode)
	}
}
