package events

import (
	"time"

	"organizerConsole/internal/mapper"
	"organizerConsole/internal/models"

	"github.com/google/uuid"
)

const (
	defaultTitle    = "Yeni Etkinlik"
	defaultLocation = "Konum Belirtilmedi"
	defaultTime     = "00:00:00"
)

// Draft is what the creation form collects.
type Draft struct {
	Title       string
	Date        string
	Time        string
	Location    string
	Status      models.EventStatus
	Image       string
	TicketTypes []models.TicketType
}

// NewTempID returns the id an optimistic entry carries until the remote
// service assigns the real one.
func NewTempID() string {
	return "tmp-" + uuid.NewString()
}

// NewCandidate builds the optimistic event for a draft. Dates and ticket
// numbers are taken as typed.
func NewCandidate(d Draft, now time.Time) models.Event {
	id := NewTempID()

	title := d.Title
	if title == "" {
		title = defaultTitle
	}

	date := now.UTC().Format(time.RFC3339)
	if d.Date != "" {
		t := d.Time
		if t == "" {
			t = defaultTime
		}
		date = d.Date + "T" + t
	}

	location := d.Location
	if location == "" {
		location = defaultLocation
	}

	image := d.Image
	if image == "" {
		image = mapper.PlaceholderImage(id)
	}

	ticketTypes := make([]models.TicketType, len(d.TicketTypes))
	copy(ticketTypes, d.TicketTypes)
	for i := range ticketTypes {
		if ticketTypes[i].ID == "" {
			ticketTypes[i].ID = uuid.NewString()
		}
	}

	return models.Event{
		ID:          id,
		Title:       title,
		Date:        date,
		Location:    location,
		Status:      mapper.MapStatus(string(d.Status)),
		TicketTypes: ticketTypes,
		Revenue:     0,
		Image:       image,
	}
}
