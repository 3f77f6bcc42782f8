package services

import (
	"context"
	"math"
	"time"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/domain/query"
	"github.com/creativepulse/core/internal/infrastructure/logger"
	"github.com/creativepulse/core/internal/ports"
)

// MetricsService derives dashboard aggregates from task snapshots.
// It never mutates tasks; Compute is pure and safe to call repeatedly
// on the same snapshot.
type MetricsService struct {
	taskRepo ports.TaskRepository
	roster   ports.RosterService
	logger   *logger.Logger
}

// NewMetricsService creates a new metrics service
func NewMetricsService(taskRepo ports.TaskRepository, roster ports.RosterService, logger *logger.Logger) *MetricsService {
	return &MetricsService{
		taskRepo: taskRepo,
		roster:   roster,
		logger:   logger,
	}
}

// Dashboard computes the aggregate metrics over the (optionally
// filtered) current collection.
func (s *MetricsService) Dashboard(ctx context.Context, filter query.FilterState, now time.Time) (*ports.Metrics, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks = query.Apply(tasks, filter)

	pics, err := s.roster.MemberNames(ctx)
	if err != nil {
		return nil, err
	}

	return Compute(tasks, pics, now), nil
}

// Compute derives every dashboard aggregate from a task snapshot.
// One row per roster PIC is emitted regardless of whether that member
// currently has assignments.
func Compute(tasks []*entities.Task, pics []string, now time.Time) *ports.Metrics {
	m := &ports.Metrics{
		Total:          len(tasks),
		ActiveTasks:    []*entities.Task{},
		AttentionTasks: []*entities.Task{},
	}

	var completedMinutes int
	var onTime int
	for _, t := range tasks {
		switch {
		case t.Status == entities.StatusCompleted:
			m.Completed++
			completedMinutes += t.DurationMinutes
			if t.CompletedOnTime() {
				onTime++
			}
		case t.Status == entities.StatusNotStarted:
			m.NotStarted++
		}
		if t.IsActive() {
			m.InProgress++
			m.ActiveTasks = append(m.ActiveTasks, t)
		}
		if t.IsOverdue(now) {
			m.Overdue++
			m.AttentionTasks = append(m.AttentionTasks, t)
		}
	}

	m.CompletionRate = ratePct(m.Completed, m.Total, 0)
	m.OnTimeRate = ratePct(onTime, m.Completed, 100)
	if m.Completed > 0 {
		m.AvgMinutesPerTask = float64(completedMinutes) / float64(m.Completed)
	}

	m.Members = make([]ports.MemberStats, 0, len(pics))
	for _, pic := range pics {
		m.Members = append(m.Members, memberStats(tasks, pic))
	}

	return m
}

func memberStats(tasks []*entities.Task, pic string) ports.MemberStats {
	row := ports.MemberStats{Name: pic}

	var minutes int
	for _, t := range tasks {
		if t.Pic != pic {
			continue
		}
		row.Assigned++
		if t.Status != entities.StatusCompleted {
			continue
		}
		row.Completed++
		minutes += t.DurationMinutes
		if !t.CompletedOnTime() {
			row.Late++
		}
	}

	row.Hours = math.Round(float64(minutes)/60*10) / 10
	row.CompletionPct = ratePct(row.Completed, row.Assigned, 0)

	return row
}

// ratePct is the rounded percentage of part over whole, or empty when
// the denominator is zero. The on-time rate is vacuously 100 with no
// completed tasks; the completion rate is 0 with no tasks at all.
func ratePct(part, whole, empty int) int {
	if whole == 0 {
		return empty
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
