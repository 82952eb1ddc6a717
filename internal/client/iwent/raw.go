package iwent

import "encoding/json"

type envelope[T any] struct {
	Data T `json:"data"`
}

type RawVenue struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type RawTicketType struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

// RawEvent is the summary record returned by the events endpoints.
// It carries neither revenue nor sold counts.
type RawEvent struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	StartDate   string          `json:"startDate"`
	Venue       *RawVenue       `json:"venue,omitempty"`
	Status      string          `json:"status,omitempty"`
	TicketTypes []RawTicketType `json:"tickettypes,omitempty"`
	BannerURL   string          `json:"bannerUrl,omitempty"`
}

type RawChatRoom struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Members   []json.RawMessage `json:"members"`
	CreatedAt string            `json:"createdAt"`
}

type CreateEventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartAt     string `json:"startAt"`
	EndAt       string `json:"endAt"`
	VenueID     string `json:"venueId"`
	Category    string `json:"category"`
	BannerURL   string `json:"bannerUrl,omitempty"`
}
