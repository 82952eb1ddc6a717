// Package metrics derives dashboard and analytics figures from an event list
// and a selection key. Nothing here holds state or blocks.
package metrics

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"organizerConsole/internal/models"
)

var ErrEventNotFound = errors.New("event not found")

// All is the default selection of every filtered screen.
const All Selection = "all"

// recentLimit is how many events the dashboard lists when nothing is selected.
const recentLimit = 5

// NoTickets replaces the sold/quota ratio for events without ticket types.
const NoTickets = "-"

// Selection is either All or the id of one event.
type Selection string

func ParseSelection(raw string) Selection {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return All
	}

	return Selection(raw)
}

func (s Selection) IsAll() bool {
	return s == All
}

func (s Selection) String() string {
	return string(s)
}

func find(events []models.Event, id string) (models.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}

	return models.Event{}, false
}

// selected narrows events to the selection. An unknown id yields nothing.
func selected(events []models.Event, sel Selection) []models.Event {
	if sel.IsAll() {
		return events
	}

	if e, ok := find(events, string(sel)); ok {
		return []models.Event{e}
	}

	return nil
}

// Dashboard computes the four headline figures. In All mode ActiveEvents
// counts every event regardless of status.
func Dashboard(events []models.Event, sel Selection) (models.DashboardStats, error) {
	if sel.IsAll() {
		var revenue float64
		sold := 0

		for _, e := range events {
			revenue += e.Revenue
			sold += e.TicketsSold()
		}

		return models.DashboardStats{
			TotalRevenue:   revenue,
			TicketsSold:    sold,
			ActiveEvents:   len(events),
			AvgTicketPrice: averagePrice(revenue, sold),
		}, nil
	}

	e, ok := find(events, string(sel))
	if !ok {
		return models.DashboardStats{}, fmt.Errorf("selection %q: %w", sel, ErrEventNotFound)
	}

	sold := e.TicketsSold()

	return models.DashboardStats{
		TotalRevenue:   e.Revenue,
		TicketsSold:    sold,
		ActiveEvents:   1,
		AvgTicketPrice: averagePrice(e.Revenue, sold),
	}, nil
}

// averagePrice rounds half away from zero, which is half-up for the
// non-negative amounts it sees.
func averagePrice(revenue float64, sold int) int64 {
	if sold <= 0 {
		return 0
	}

	return int64(math.Round(revenue / float64(sold)))
}

// DisplayedEvents is the dashboard list: the first few events, or just the
// selected one.
func DisplayedEvents(events []models.Event, sel Selection) []models.Event {
	if sel.IsAll() {
		if len(events) > recentLimit {
			return events[:recentLimit]
		}
		return events
	}

	out := make([]models.Event, 0, 1)
	for _, e := range events {
		if e.ID == string(sel) {
			out = append(out, e)
		}
	}

	return out
}

func TicketSummary(e models.Event) models.TicketSummary {
	sold := e.TicketsSold()

	if len(e.TicketTypes) == 0 {
		return models.TicketSummary{Sold: sold, Label: NoTickets}
	}

	quota := e.TicketsQuota()

	summary := models.TicketSummary{
		Sold:     sold,
		Quota:    quota,
		Label:    fmt.Sprintf("%d / %d", sold, quota),
		Oversold: sold > quota,
	}

	if quota > 0 {
		summary.FillPercent = math.Min(100, float64(sold)/float64(quota)*100)
	}

	return summary
}

// Analytics bundles the chart series of src for the selection.
func Analytics(events []models.Event, sel Selection, src SeriesSource) (models.AnalyticsStats, error) {
	if !sel.IsAll() {
		if _, ok := find(events, string(sel)); !ok {
			return models.AnalyticsStats{}, fmt.Errorf("selection %q: %w", sel, ErrEventNotFound)
		}
	}

	return models.AnalyticsStats{
		Audience:    src.Audience(events, sel),
		Sales:       src.Sales(events, sel),
		TicketTypes: src.TicketTypes(events, sel),
		Gender:      src.Gender(events, sel),
		Age:         src.Age(events, sel),
	}, nil
}
