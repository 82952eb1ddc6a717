package models

type EventStatus string

const (
	StatusDraft     EventStatus = "DRAFT"
	StatusPublished EventStatus = "PUBLISHED"
	StatusSoldOut   EventStatus = "SOLD_OUT"
	StatusEnded     EventStatus = "ENDED"
	StatusCancelled EventStatus = "CANCELLED"
)

// Label is the Turkish display name shown by the dashboard.
func (s EventStatus) Label() string {
	switch s {
	case StatusPublished:
		return "Yayında"
	case StatusSoldOut:
		return "Tükendi"
	case StatusEnded:
		return "Tamamlandı"
	case StatusCancelled:
		return "İptal"
	default:
		return "Taslak"
	}
}

type TicketType struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Quota int     `json:"quota"`
	Sold  int     `json:"sold"`
}

// Event is the canonical shape every screen reads.
// Date is kept as the ISO-8601 string it was received or composed as.
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Location    string       `json:"location"`
	Status      EventStatus  `json:"status"`
	TicketTypes []TicketType `json:"ticketTypes"`
	Revenue     float64      `json:"revenue"`
	Image       string       `json:"image,omitempty"`

	// Pending marks an optimistic entry the remote service has not confirmed yet.
	Pending bool `json:"pending,omitempty"`
}

func (e Event) TicketsSold() int {
	total := 0
	for _, t := range e.TicketTypes {
		total += t.Sold
	}

	return total
}

func (e Event) TicketsQuota() int {
	total := 0
	for _, t := range e.TicketTypes {
		total += t.Quota
	}

	return total
}

// Clone returns a copy that does not share the ticket type slice.
func (e Event) Clone() Event {
	c := e
	if e.TicketTypes != nil {
		c.TicketTypes = make([]TicketType, len(e.TicketTypes))
		copy(c.TicketTypes, e.TicketTypes)
	}

	return c
}
