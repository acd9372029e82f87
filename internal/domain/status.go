package domain

import (
	"fmt"
	"strings"
)

// Status represents the progress state of a task.
type Status string

const (
	StatusUninitiated Status = "uninitiated" // Not started yet
	StatusInProgress  Status = "inProgress"  // Being worked on
	StatusCompleted   Status = "completed"   // Done
)

// DefaultStatus is used when a record carries no recognizable status.
const DefaultStatus = StatusInProgress

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusUninitiated, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusUninitiated, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// OrDefault returns the status itself, or DefaultStatus when it is not valid.
func (s Status) OrDefault() Status {
	if s.IsValid() {
		return s
	}
	return DefaultStatus
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusUninitiated:
		return "Uninitiated"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseStatus parses user input into a Status.
// Matching is case-insensitive and accepts the display form ("In Progress").
func ParseStatus(s string) (Status, error) {
	key := normalizeKey(s)
	for _, st := range AllStatuses() {
		if key == normalizeKey(string(st)) || key == normalizeKey(st.Display()) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when a record carries no recognizable priority.
const DefaultPriority = PriorityLow

// AllPriorities returns all valid priority values.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// OrDefault returns the priority itself, or DefaultPriority when it is not valid.
func (p Priority) OrDefault() Priority {
	if p.IsValid() {
		return p
	}
	return DefaultPriority
}

// Display returns the capitalized priority name.
func (p Priority) Display() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// ParsePriority parses user input into a Priority (case-insensitive).
func ParsePriority(s string) (Priority, error) {
	key := normalizeKey(s)
	for _, p := range AllPriorities() {
		if key == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// Member identifies a team member a task can be assigned to.
type Member string

const (
	TeamMember1 Member = "teamMember1"
	TeamMember2 Member = "teamMember2"
	TeamMember3 Member = "teamMember3"
	TeamMember4 Member = "teamMember4"
)

// AllMembers returns the fixed member enumeration in display order.
func AllMembers() []Member {
	return []Member{TeamMember1, TeamMember2, TeamMember3, TeamMember4}
}

// IsValid returns true if the member belongs to the enumeration.
func (m Member) IsValid() bool {
	switch m {
	case TeamMember1, TeamMember2, TeamMember3, TeamMember4:
		return true
	}
	return false
}

// Display returns the label shown for the member ("Team Member 1").
func (m Member) Display() string {
	if !m.IsValid() {
		return string(m)
	}
	return "Team Member " + string(m[len(m)-1:])
}

// ParseMember parses user input into a Member.
// Accepts the identifier ("teamMember2"), the label ("Team Member 2") or the bare number ("2").
func ParseMember(s string) (Member, error) {
	key := normalizeKey(s)
	for _, m := range AllMembers() {
		n := string(m[len(m)-1:])
		if key == normalizeKey(string(m)) || key == n || key == "member"+n {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMember, s)
}

// normalizeKey lowercases and strips spaces, dashes and underscores.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
