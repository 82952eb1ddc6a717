// Package moderation keeps reports, chat groups, blocked words and
// auto-moderation switches in memory. Apart from fetching chat rooms nothing
// here talks to the remote service.
package moderation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/mapper"
	"organizerConsole/internal/models"
)

const (
	SettingSpamProtection = "spamProtection"
	SettingSlowMode       = "slowMode"
	SettingMediaFilter    = "mediaFilter"

	HistoryClearedMessage = "Sohbet geçmişi başarıyla temizlendi."
)

var (
	ErrReportNotFound       = errors.New("report not found")
	ErrChatGroupNotFound    = errors.New("chat group not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrEmptyWord            = errors.New("word is empty")
	ErrUnknownSetting       = errors.New("unknown auto-moderation setting")
)

type ChatSource interface {
	ListEventChats(ctx context.Context) ([]iwent.RawChatRoom, error)
}

type Store struct {
	log   *slog.Logger
	chats ChatSource

	mu           sync.Mutex
	reports      []models.Report
	chatGroups   []models.ChatGroup
	blockedWords []string
	autoMod      models.AutoModSettings
}

func New(log *slog.Logger, chats ChatSource) *Store {
	return &Store{
		log:          log.With(slog.String("component", "moderation")),
		chats:        chats,
		reports:      seedReports(),
		chatGroups:   []models.ChatGroup{},
		blockedWords: seedBlockedWords(),
		autoMod:      defaultAutoMod(),
	}
}

func (s *Store) Reports() []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)

	return out
}

// ApproveReport marks a report reviewed. Approving a reviewed report is a no-op.
func (s *Store) ApproveReport(id int) (models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports[i].Status = models.ReportReviewed
			return s.reports[i], nil
		}
	}

	return models.Report{}, ErrReportNotFound
}

// RejectReport removes a report for good. Nothing happens unless confirmed.
func (s *Store) RejectReport(id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return nil
		}
	}

	return ErrReportNotFound
}

// LoadChatGroups refetches chat rooms, replacing local state including any
// toggled statuses. An empty or failed fetch yields the demo groups.
func (s *Store) LoadChatGroups(ctx context.Context) []models.ChatGroup {
	const op = "moderation.LoadChatGroups"

	log := s.log.With(slog.String("op", op))

	var groups []models.ChatGroup

	rooms, err := s.chats.ListEventChats(ctx)
	if err != nil {
		log.Warn("failed to fetch chat rooms", sl.Err(err))
	}

	for _, r := range rooms {
		groups = append(groups, mapper.MapChatRoom(r))
	}

	if len(groups) == 0 {
		log.Debug("no chat rooms, using demo groups")
		groups = demoChatGroups()
	}

	s.mu.Lock()
	s.chatGroups = groups
	s.mu.Unlock()

	return s.ChatGroups()
}

func (s *Store) ChatGroups() []models.ChatGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatGroup, len(s.chatGroups))
	copy(out, s.chatGroups)

	return out
}

// ToggleChatGroup flips a group between active and frozen locally.
func (s *Store) ToggleChatGroup(id string) (models.ChatGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chatGroups {
		if s.chatGroups[i].ID != id {
			continue
		}

		if s.chatGroups[i].Status == models.ChatActive {
			s.chatGroups[i].Status = models.ChatFrozen
		} else {
			s.chatGroups[i].Status = models.ChatActive
		}

		return s.chatGroups[i], nil
	}

	return models.ChatGroup{}, ErrChatGroupNotFound
}

// ClearChatHistory only simulates the action: after confirmation it reports
// success without touching any history.
func (s *Store) ClearChatHistory(id string, confirmed bool) (string, error) {
	if !confirmed {
		return "", ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.chatGroups {
		if g.ID == id {
			return HistoryClearedMessage, nil
		}
	}

	return "", ErrChatGroupNotFound
}

func (s *Store) BlockedWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.blockedWords))
	copy(out, s.blockedWords)

	return out
}

// AddBlockedWord reports whether the word was new. Duplicates leave the list as is.
func (s *Store) AddBlockedWord(word string) (bool, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return false, ErrEmptyWord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.blockedWords {
		if w == word {
			return false, nil
		}
	}

	s.blockedWords = append(s.blockedWords, word)

	return true, nil
}

func (s *Store) RemoveBlockedWord(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.blockedWords[:0]
	for _, w := range s.blockedWords {
		if w != word {
			out = append(out, w)
		}
	}
	s.blockedWords = out
}

func (s *Store) AutoMod() models.AutoModSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.autoMod
}

func (s *Store) ToggleAutoMod(setting string) (models.AutoModSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch setting {
	case SettingSpamProtection:
		s.autoMod.SpamProtection = !s.autoMod.SpamProtection
	case SettingSlowMode:
		s.autoMod.SlowMode = !s.autoMod.SlowMode
	case SettingMediaFilter:
		s.autoMod.MediaFilter = !s.autoMod.MediaFilter
	default:
		return s.autoMod, ErrUnknownSetting
	}

	return s.autoMod, nil
}
