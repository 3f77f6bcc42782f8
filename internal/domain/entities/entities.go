package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskExists        = errors.New("task already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrMissingProof      = errors.New("proof of work is required")
	ErrMissingFeedback   = errors.New("revision feedback is required")
	ErrForbidden         = errors.New("operation not permitted for role")
	ErrMissingTitle      = errors.New("task title is required")
)

// Enums and types
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

type Status string

const (
	StatusNotStarted     Status = "Not Started"
	StatusInProgress     Status = "In Progress"
	StatusWaitingReview  Status = "Waiting Review"
	StatusRevisionNeeded Status = "Revision Needed"
	StatusCompleted      Status = "Completed"

	// StatusOverdue is never stored on a task. It exists only as a
	// display value derived from Task.IsOverdue; the persisted status
	// keeps whatever stored state the task is actually in.
	StatusOverdue Status = "Overdue"
)

type ProofType string

const (
	ProofTypeLink  ProofType = "link"
	ProofTypeImage ProofType = "image"
)

// User represents an entry in the static team roster.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Reference is an attachment or link owned by a single task.
type Reference struct {
	ID   string    `json:"id"`
	Type ProofType `json:"type"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

// Task is the central entity: a creative deliverable assigned to a PIC
// (person in charge) and moved through the review lifecycle.
type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Pic         string      `json:"pic"`
	Brand       string      `json:"brand"`
	Campaign    string      `json:"campaign"`
	Status      Status      `json:"status"`
	StartDate   Date        `json:"startDate"`
	EndDate     Date        `json:"endDate"`
	Description string      `json:"description,omitempty"`
	Subtasks    []string    `json:"subtasks,omitempty"`
	References  []Reference `json:"references,omitempty"`

	// Time tracking. ActualStartTime is set once, on the first start,
	// and survives revision cycles. ResumedAt is the baseline of the
	// current work cycle: each start resets it, and each submit measures
	// elapsed work from it, so revision loops accumulate into
	// DurationMinutes without re-counting earlier cycles.
	ActualStartTime *time.Time `json:"actualStartTime,omitempty"`
	ActualEndTime   *time.Time `json:"actualEndTime,omitempty"`
	ResumedAt       *time.Time `json:"resumedAt,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"`

	// Review artifacts
	ProofType        ProofType `json:"proofType,omitempty"`
	ProofOfWork      string    `json:"proofOfWork,omitempty"`
	RevisionFeedback string    `json:"revisionFeedback,omitempty"`
}

// Business logic methods for Task

// IsOverdue reports whether the task's deadline has passed without
// completion. Overdue is derived, never stored: a task whose persisted
// status still reads "Not Started" or "In Progress" is overdue for
// display and metrics the moment its end date is behind now's date.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusCompleted {
		return false
	}
	if t.EndDate.IsZero() {
		return false
	}
	return t.EndDate.Before(DateOf(now))
}

// DisplayStatus is the status shown on boards: the stored status,
// except that unfinished tasks past deadline read as Overdue.
func (t *Task) DisplayStatus(now time.Time) Status {
	if t.IsOverdue(now) {
		return StatusOverdue
	}
	return t.Status
}

// CanStart reports whether a start transition is legal.
func (t *Task) CanStart() bool {
	return t.Status == StatusNotStarted || t.Status == StatusRevisionNeeded
}

// CanSubmit reports whether work can be submitted for review.
func (t *Task) CanSubmit() bool {
	return t.Status == StatusInProgress
}

// CanReview reports whether approve / request-revision are legal.
func (t *Task) CanReview() bool {
	return t.Status == StatusWaitingReview
}

// IsActive reports whether the task counts toward the in-progress
// aggregate: actively worked, waiting on review, or under revision.
func (t *Task) IsActive() bool {
	switch t.Status {
	case StatusInProgress, StatusWaitingReview, StatusRevisionNeeded:
		return true
	default:
		return false
	}
}

// CompletedOnTime reports whether a completed task beat the end-of-day
// deadline of its end date. A completed task with no recorded end time
// counts as on-time.
func (t *Task) CompletedOnTime() bool {
	if t.ActualEndTime == nil {
		return true
	}
	return !t.ActualEndTime.After(t.EndDate.EndOfDay())
}

// CycleBaseline is the instant elapsed work is measured from on submit:
// the current cycle's resume point, falling back to the original start
// for tasks persisted before resume tracking existed.
func (t *Task) CycleBaseline() *time.Time {
	if t.ResumedAt != nil {
		return t.ResumedAt
	}
	return t.ActualStartTime
}

// Clone returns a deep copy so read-side callers can never mutate the
// stored collection through a returned task.
func (t *Task) Clone() *Task {
	c := *t
	if t.Subtasks != nil {
		c.Subtasks = append([]string(nil), t.Subtasks...)
	}
	if t.References != nil {
		c.References = append([]Reference(nil), t.References...)
	}
	if t.ActualStartTime != nil {
		v := *t.ActualStartTime
		c.ActualStartTime = &v
	}
	if t.ActualEndTime != nil {
		v := *t.ActualEndTime
		c.ActualEndTime = &v
	}
	if t.ResumedAt != nil {
		v := *t.ResumedAt
		c.ResumedAt = &v
	}
	return &c
}

// Business logic methods for User

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanWorkOn reports whether the user may start or submit the task.
// Members work only their own assignments; admins may act on any task.
func (u *User) CanWorkOn(t *Task) bool {
	return u.IsAdmin() || u.Name == t.Pic
}

// CanSee reports whether the task is visible to the user. Members see
// only tasks where they are the PIC.
func (u *User) CanSee(t *Task) bool {
	return u.IsAdmin() || u.Name == t.Pic
}

// Utility methods

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusWaitingReview, StatusRevisionNeeded, StatusCompleted:
		return true
	default:
		return false
	}
}

func (p ProofType) IsValid() bool {
	return p == ProofTypeLink || p == ProofTypeImage
}
