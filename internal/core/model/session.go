package model

import (
	"time"

	"github.com/bytedance/sonic"
)

// SentinelDate is substituted for absent or malformed session dates.
// It sorts before any real date, so broken records surface at the top
// of ascending views instead of disappearing.
const SentinelDate = "2000-01-01"

// Session is one recorded work session, keyed in the store by an opaque
// id (date + start epoch). Sessions are written by the recording
// subsystem and read-only to this engine.
type Session struct {
	Sphere         string          `json:"sphere"`
	Date           string          `json:"date"`
	StartTimestamp int64           `json:"start_timestamp"`
	EndTimestamp   int64           `json:"end_timestamp"`
	TotalDuration  int             `json:"total_duration"`
	ActiveDuration int             `json:"active_duration"`
	BreakDuration  int             `json:"break_duration"`
	Active         []ActivePeriod  `json:"active,omitempty"`
	Breaks         []BreakPeriod   `json:"breaks,omitempty"`
	IdlePeriods    []IdlePeriod    `json:"idle_periods,omitempty"`
	Comments       SessionComments `json:"session_comments"`
}

// SessionComments carries the free-text notes attached to a session.
type SessionComments struct {
	ActiveNotes  string `json:"active_notes,omitempty"`
	BreakNotes   string `json:"break_notes,omitempty"`
	IdleNotes    string `json:"idle_notes,omitempty"`
	SessionNotes string `json:"session_notes,omitempty"`
}

// Day returns the session date, falling back to SentinelDate when the
// recorded value is absent or does not parse as YYYY-MM-DD.
func (s *Session) Day() string {
	if s.Date == "" {
		return SentinelDate
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return SentinelDate
	}
	return s.Date
}

// StartClock formats the session start epoch as HH:MM:SS, empty when unset.
func (s *Session) StartClock() string {
	return clockFromEpoch(s.StartTimestamp)
}

// EndClock formats the session end epoch as HH:MM:SS, empty when unset.
func (s *Session) EndClock() string {
	return clockFromEpoch(s.EndTimestamp)
}

func clockFromEpoch(ts int64) string {
	if ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).Format("15:04:05")
}

// ActivePeriod is one contiguous stretch of active work. Exactly one of
// Project (single form) or Projects (split form) is meaningfully
// populated; IsSplit discriminates.
type ActivePeriod struct {
	Start          string         `json:"start"`
	StartTimestamp int64          `json:"start_timestamp,omitempty"`
	Duration       int            `json:"duration"`
	Comment        string         `json:"comment,omitempty"`
	Project        string         `json:"project,omitempty"`
	Projects       []ProjectSplit `json:"projects,omitempty"`
}

// ProjectSplit is one entry of a multi-project split. Exactly one entry
// per period carries Primary.
type ProjectSplit struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Duration   int     `json:"duration"`
	Comment    string  `json:"comment,omitempty"`
	Primary    bool    `json:"project_primary"`
}

// IsSplit reports whether the period uses the multi-project form.
func (p *ActivePeriod) IsSplit() bool {
	return len(p.Projects) > 0
}

// primaryIndex locates the entry flagged as primary. When no entry
// carries the flag the first entry stands in, so malformed splits still
// yield a deterministic primary.
func (p *ActivePeriod) primaryIndex() int {
	for i, e := range p.Projects {
		if e.Primary {
			return i
		}
	}
	return 0
}

// PrimarySplit returns the primary split entry.
func (p *ActivePeriod) PrimarySplit() (ProjectSplit, bool) {
	if len(p.Projects) == 0 {
		return ProjectSplit{}, false
	}
	return p.Projects[p.primaryIndex()], true
}

// SecondarySplits returns every split entry except the primary one, in
// stored order.
func (p *ActivePeriod) SecondarySplits() []ProjectSplit {
	if len(p.Projects) == 0 {
		return nil
	}
	primary := p.primaryIndex()
	out := make([]ProjectSplit, 0, len(p.Projects)-1)
	for i, e := range p.Projects {
		if i == primary {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Label returns the display project for the period: the scalar project
// in single form, the primary entry's name in split form.
func (p *ActivePeriod) Label() string {
	if p.IsSplit() {
		primary, _ := p.PrimarySplit()
		return primary.Name
	}
	return p.Project
}

// EndClock derives the period end wall-clock from start epoch plus
// duration, empty when the start epoch is unknown.
func (p *ActivePeriod) EndClock() string {
	if p.StartTimestamp <= 0 {
		return ""
	}
	return time.Unix(p.StartTimestamp+int64(p.Duration), 0).Format("15:04:05")
}

// BreakPeriod mirrors ActivePeriod for breaks, with Action/Actions in
// place of Project/Projects.
type BreakPeriod struct {
	Start          string        `json:"start"`
	StartTimestamp int64         `json:"start_timestamp,omitempty"`
	Duration       int           `json:"duration"`
	Comment        string        `json:"comment,omitempty"`
	Action         string        `json:"action,omitempty"`
	Actions        []ActionSplit `json:"actions,omitempty"`
}

// ActionSplit is one entry of a multi-action break split.
//
// Stored data is inconsistent about the primary flag key for break
// entries: newer records write action_primary, older ones break_primary.
// Decoding accepts either; encoding always writes action_primary.
type ActionSplit struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Duration   int     `json:"duration"`
	Comment    string  `json:"comment,omitempty"`
	Primary    bool    `json:"action_primary"`
}

type actionSplitWire struct {
	Name          string  `json:"name"`
	Percentage    float64 `json:"percentage"`
	Duration      int     `json:"duration"`
	Comment       string  `json:"comment,omitempty"`
	ActionPrimary bool    `json:"action_primary"`
	BreakPrimary  bool    `json:"break_primary"`
}

// UnmarshalJSON accepts both historical spellings of the primary flag.
func (a *ActionSplit) UnmarshalJSON(data []byte) error {
	var wire actionSplitWire
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return err
	}
	a.Name = wire.Name
	a.Percentage = wire.Percentage
	a.Duration = wire.Duration
	a.Comment = wire.Comment
	a.Primary = wire.ActionPrimary || wire.BreakPrimary
	return nil
}

// IsSplit reports whether the break uses the multi-action form.
func (b *BreakPeriod) IsSplit() bool {
	return len(b.Actions) > 0
}

func (b *BreakPeriod) primaryIndex() int {
	for i, e := range b.Actions {
		if e.Primary {
			return i
		}
	}
	return 0
}

// PrimarySplit returns the primary action entry, first entry fallback.
func (b *BreakPeriod) PrimarySplit() (ActionSplit, bool) {
	if len(b.Actions) == 0 {
		return ActionSplit{}, false
	}
	return b.Actions[b.primaryIndex()], true
}

// SecondarySplits returns every action entry except the primary one, in
// stored order.
func (b *BreakPeriod) SecondarySplits() []ActionSplit {
	if len(b.Actions) == 0 {
		return nil
	}
	primary := b.primaryIndex()
	out := make([]ActionSplit, 0, len(b.Actions)-1)
	for i, e := range b.Actions {
		if i == primary {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Label returns the display action for the break period.
func (b *BreakPeriod) Label() string {
	if b.IsSplit() {
		primary, _ := b.PrimarySplit()
		return primary.Name
	}
	return b.Action
}

// EndClock derives the break end wall-clock, empty when unknown.
func (b *BreakPeriod) EndClock() string {
	if b.StartTimestamp <= 0 {
		return ""
	}
	return time.Unix(b.StartTimestamp+int64(b.Duration), 0).Format("15:04:05")
}

// IdlePeriod is a stretch of detected inactivity. A nil EndTimestamp
// means the idle period is still open and its duration is not final.
type IdlePeriod struct {
	Start        string `json:"start"`
	End          string `json:"end,omitempty"`
	EndTimestamp *int64 `json:"end_timestamp,omitempty"`
	Duration     int    `json:"duration"`
}

// Closed reports whether the idle period has ended. Open idle periods
// are excluded from aggregation.
func (i *IdlePeriod) Closed() bool {
	return i.EndTimestamp != nil
}
