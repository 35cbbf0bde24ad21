// Package models defines the records persisted by focusflow
package models

import (
	"strings"
	"time"
)

// Phase is the sub-state of a running session.
type Phase string

const (
	Focus     Phase = "FOCUS"
	Rest      Phase = "REST"
	Paused    Phase = "PAUSED"
	Completed Phase = "COMPLETED"
)

// FocusModel is a user-defined focus/rest configuration and its completion
// target.
type FocusModel struct {
	Title             string `json:"title"`
	Category          string `json:"category"`
	Goals             string `json:"goals"`
	ID                int    `json:"focus_id"`
	FocusDuration     int    `json:"focusDuration"` // minutes
	RestDuration      int    `json:"restDuration"`  // minutes
	CompletedSessions int    `json:"completedSessions"`
	TotalSessions     int    `json:"totalSessions"`
	CreatedAt         int64  `json:"createdAt"` // unix millis
	IsCompleted       bool   `json:"isCompleted"`
}

// NewFocusModel returns a focus model with the defaults of a freshly created
// record. The id is assigned on insert.
func NewFocusModel(title string, focusMins, restMins int) FocusModel {
	return FocusModel{
		Title:         title,
		FocusDuration: focusMins,
		RestDuration:  restMins,
		TotalSessions: 1,
		CreatedAt:     time.Now().UnixMilli(),
	}
}

// Validate checks the fields a user supplies when creating a focus model.
func (f *FocusModel) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return errEmptyTitle
	}

	if f.FocusDuration <= 0 || f.RestDuration <= 0 {
		return errInvalidDuration
	}

	if f.TotalSessions < 1 {
		return errInvalidTotal
	}

	return nil
}

// Complete returns a copy of the model with one more completed session.
func (f FocusModel) Complete() FocusModel {
	f.IsCompleted = f.CompletedSessions+1 >= f.TotalSessions
	f.CompletedSessions++

	return f
}

// Progress returns the completed and target session counts.
func (f *FocusModel) Progress() (done, total int) {
	return f.CompletedSessions, f.TotalSessions
}

func (f *FocusModel) Created() time.Time {
	return time.UnixMilli(f.CreatedAt)
}

// Category is a named group for focus models.
type Category struct {
	Name string `json:"name"`
	ID   int    `json:"category_ID"`
}

// AmbientSound is a background sound that can be played during a session.
type AmbientSound struct {
	Name    string `json:"name"`
	FileURL string `json:"fileUrl"`
	ID      int    `json:"ambientSound_ID"`
}

// FocusSession is a single timed run against a focus model.
type FocusSession struct {
	EndTime        *int64 `json:"endTime"` // unix millis, nil while active
	CurrentPhase   Phase  `json:"currentPhase"`
	ID             int    `json:"sessionId"`
	FocusID        int    `json:"focusId"`
	StartTime      int64  `json:"startTime"` // unix millis
	PausedDuration int64  `json:"pausedDuration"`
	IsCompleted    bool   `json:"isCompleted"`
}

// Active reports whether the session has not been completed yet.
func (s *FocusSession) Active() bool {
	return s.EndTime == nil && !s.IsCompleted
}

func (s *FocusSession) Started() time.Time {
	return time.UnixMilli(s.StartTime)
}

// Ended returns the end time of the session, or the zero time if it is
// still active.
func (s *FocusSession) Ended() time.Time {
	if s.EndTime == nil {
		return time.Time{}
	}

	return time.UnixMilli(*s.EndTime)
}
