package events

import "organizerConsole/internal/models"

// fallbackEvents is served when the remote service has nothing usable,
// so the dashboard always has something to show.
var fallbackEvents = []models.Event{
	{
		ID:       "1",
		Title:    "Neon Festivali 2024",
		Date:     "2024-09-15T18:00:00",
		Location: "KüçükÇiftlik Park, İstanbul",
		Status:   models.StatusPublished,
		Revenue:  450000,
		TicketTypes: []models.TicketType{
			{ID: "t1", Name: "Genel Giriş", Price: 500, Quota: 1000, Sold: 450},
			{ID: "t2", Name: "VIP", Price: 1500, Quota: 200, Sold: 150},
		},
		Image: "https://picsum.photos/400/200?random=1",
	},
	{
		ID:       "2",
		Title:    "Teknoloji Zirvesi",
		Date:     "2024-10-05T09:00:00",
		Location: "Lütfi Kırdar, İstanbul",
		Status:   models.StatusSoldOut,
		Revenue:  280000,
		TicketTypes: []models.TicketType{
			{ID: "t3", Name: "Erken Dönem", Price: 300, Quota: 500, Sold: 500},
			{ID: "t4", Name: "Standart", Price: 600, Quota: 500, Sold: 450},
		},
		Image: "https://picsum.photos/400/200?random=2",
	},
	{
		ID:          "3",
		Title:       "Yaz Veda Konseri",
		Date:        "2024-09-22T20:30:00",
		Location:    "Harbiye Açıkhava",
		Status:      models.StatusDraft,
		Revenue:     0,
		TicketTypes: []models.TicketType{},
		Image:       "https://picsum.photos/400/200?random=3",
	},
	{
		ID:       "4",
		Title:    "Gastronomi Atölyesi",
		Date:     "2024-11-12T14:00:00",
		Location: "MSA, İstanbul",
		Status:   models.StatusPublished,
		Revenue:  45000,
		TicketTypes: []models.TicketType{
			{ID: "t5", Name: "Katılım", Price: 1500, Quota: 30, Sold: 12},
		},
		Image: "https://picsum.photos/400/200?random=4",
	},
	{
		ID:          "5",
		Title:       "Start-up Networking Gecesi",
		Date:        "2024-08-30T19:00:00",
		Location:    "Kolektif House",
		Status:      models.StatusEnded,
		Revenue:     12000,
		TicketTypes: []models.TicketType{},
		Image:       "https://picsum.photos/400/200?random=5",
	},
}

// FallbackEvents returns a fresh copy of the sample dataset.
func FallbackEvents() []models.Event {
	return cloneAll(fallbackEvents)
}

func cloneAll(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}

	return out
}
