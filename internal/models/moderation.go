package models

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
)

type Report struct {
	ID      int          `json:"id"`
	Type    string       `json:"type"`
	User    string       `json:"user"`
	Content string       `json:"content"`
	Date    string       `json:"date"`
	Status  ReportStatus `json:"status"`
}

type ChatStatus string

const (
	ChatActive ChatStatus = "active"
	ChatFrozen ChatStatus = "frozen"
)

type ChatGroup struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Online       int        `json:"online"`
	Total        int        `json:"total"`
	Status       ChatStatus `json:"status"`
	LastActivity string     `json:"lastActivity"`
}

type AutoModSettings struct {
	SpamProtection bool `json:"spamProtection"`
	SlowMode       bool `json:"slowMode"`
	MediaFilter    bool `json:"mediaFilter"`
}
