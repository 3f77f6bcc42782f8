package ports

import (
	"context"
	"time"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/domain/query"
)

// TaskService interface for task CRUD operations
type TaskService interface {
	CreateTask(ctx context.Context, actor *entities.User, req CreateTaskRequest) (*entities.Task, error)
	GetTask(ctx context.Context, actor *entities.User, id string) (*entities.Task, error)
	UpdateTask(ctx context.Context, actor *entities.User, id string, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, actor *entities.User, id string) error
	ListTasks(ctx context.Context, actor *entities.User, filter query.FilterState) ([]*entities.Task, error)
}

// LifecycleService interface for the task state machine
type LifecycleService interface {
	Start(ctx context.Context, actor *entities.User, taskID string) (*entities.Task, error)
	Submit(ctx context.Context, actor *entities.User, taskID string, req SubmitWorkRequest) (*entities.Task, error)
	Approve(ctx context.Context, actor *entities.User, taskID string) (*entities.Task, error)
	RequestRevision(ctx context.Context, actor *entities.User, taskID string, feedback string) (*entities.Task, error)
}

// MetricsService interface for dashboard aggregates
type MetricsService interface {
	Dashboard(ctx context.Context, filter query.FilterState, now time.Time) (*Metrics, error)
}

// ChecklistService interface for the AI subtask-suggestion collaborator
type ChecklistService interface {
	Generate(ctx context.Context, title, brand, pic string) []string
}

// RosterService interface for roster lookups
type RosterService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	MemberNames(ctx context.Context) ([]string, error)
}

// Request/Response Types

// Task related types
type CreateTaskRequest struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Pic         string               `json:"pic" validate:"required"`
	Brand       string               `json:"brand" validate:"required"`
	Campaign    string               `json:"campaign" validate:"required"`
	StartDate   entities.Date        `json:"startDate"`
	EndDate     entities.Date        `json:"endDate"`
	Description string               `json:"description"`
	Subtasks    []string             `json:"subtasks"`
	References  []entities.Reference `json:"references"`
}

type UpdateTaskRequest struct {
	Title       *string               `json:"title" validate:"omitempty,max=200"`
	Pic         *string               `json:"pic"`
	Brand       *string               `json:"brand"`
	Campaign    *string               `json:"campaign"`
	StartDate   *entities.Date        `json:"startDate"`
	EndDate     *entities.Date        `json:"endDate"`
	Description *string               `json:"description"`
	Subtasks    *[]string             `json:"subtasks"`
	References  *[]entities.Reference `json:"references"`
}

type SubmitWorkRequest struct {
	ProofType   entities.ProofType `json:"proofType" validate:"required,oneof=link image"`
	ProofOfWork string             `json:"proofOfWork" validate:"required"`
}

// Metrics related types

// MemberStats is one per-PIC row of the team performance rollup.
type MemberStats struct {
	Name          string  `json:"name"`
	Assigned      int     `json:"assigned"`
	Completed     int     `json:"completed"`
	Hours         float64 `json:"hours"`
	Late          int     `json:"late"`
	CompletionPct int     `json:"completionPct"`
}

// Metrics is the read-only dashboard aggregate over a task snapshot.
type Metrics struct {
	Total             int           `json:"total"`
	Completed         int           `json:"completed"`
	Overdue           int           `json:"overdue"`
	InProgress        int           `json:"inProgress"`
	NotStarted        int           `json:"notStarted"`
	CompletionRate    int           `json:"completionRate"`
	OnTimeRate        int           `json:"onTimeRate"`
	AvgMinutesPerTask float64       `json:"avgMinutesPerTask"`
	Members           []MemberStats `json:"members"`

	// Dashboard projections: tasks in an active state and tasks that
	// need attention (derived overdue). Read-only copies.
	ActiveTasks    []*entities.Task `json:"activeTasks"`
	AttentionTasks []*entities.Task `json:"attentionTasks"`
}
