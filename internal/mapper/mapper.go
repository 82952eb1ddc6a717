// Package mapper turns raw remote service records into the canonical
// models the stores hold. Every function here is total: missing fields get
// defaults instead of errors.
package mapper

import (
	"fmt"
	"time"

	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/models"
)

const (
	LocationUnspecified = "Online / Belirtilmedi"
	UnnamedChatGroup    = "İsimsiz Grup"

	placeholderImage = "https://picsum.photos/400/200?random=%s"

	defaultDescription = "Frontend generated description"
	defaultVenueID     = "mock-venue-id"
	defaultCategory    = "music"
)

func MapStatus(status string) models.EventStatus {
	switch models.EventStatus(status) {
	case models.StatusPublished, models.StatusDraft, models.StatusSoldOut,
		models.StatusEnded, models.StatusCancelled:
		return models.EventStatus(status)
	default:
		return models.StatusDraft
	}
}

// PlaceholderImage is stable per id so re-renders keep the same picture.
func PlaceholderImage(id string) string {
	return fmt.Sprintf(placeholderImage, id)
}

// MapToEvent never sets Sold or Revenue, the list endpoint does not carry them.
func MapToEvent(raw iwent.RawEvent) models.Event {
	ticketTypes := make([]models.TicketType, 0, len(raw.TicketTypes))
	for _, t := range raw.TicketTypes {
		ticketTypes = append(ticketTypes, models.TicketType{
			ID:    t.ID,
			Name:  t.Name,
			Price: t.Price,
			Quota: t.Capacity,
			Sold:  0,
		})
	}

	location := LocationUnspecified
	if raw.Venue != nil {
		location = fmt.Sprintf("%s, %s", raw.Venue.Name, raw.Venue.City)
	}

	image := raw.BannerURL
	if image == "" {
		image = PlaceholderImage(raw.ID)
	}

	return models.Event{
		ID:          raw.ID,
		Title:       raw.Title,
		Date:        raw.StartDate,
		Location:    location,
		Status:      MapStatus(raw.Status),
		TicketTypes: ticketTypes,
		Revenue:     0,
		Image:       image,
	}
}

// ToCreatePayload fills the fields the creation form does not collect with
// fixed values the remote service accepts.
func ToCreatePayload(e models.Event) iwent.CreateEventPayload {
	return iwent.CreateEventPayload{
		Title:       e.Title,
		Description: defaultDescription,
		StartAt:     e.Date,
		EndAt:       e.Date,
		VenueID:     defaultVenueID,
		Category:    defaultCategory,
		BannerURL:   e.Image,
	}
}

func MapChatRoom(raw iwent.RawChatRoom) models.ChatGroup {
	name := raw.Name
	if name == "" {
		name = UnnamedChatGroup
	}

	return models.ChatGroup{
		ID:           raw.ID,
		Name:         name,
		Online:       0,
		Total:        len(raw.Members),
		Status:       models.ChatActive,
		LastActivity: formatDay(raw.CreatedAt),
	}
}

var dayLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// formatDay renders a timestamp as DD.MM.YYYY, the tr-TR short date.
func formatDay(raw string) string {
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02.01.2006")
		}
	}

	return raw
}
