package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/domain/query"
)

func TestComputeEmptyCollection(t *testing.T) {
	m := Compute(nil, []string{"Vito", "Rashid"}, time.Now())

	assert.Equal(t, 0, m.Total)
	assert.Equal(t, 0, m.CompletionRate)
	// With no completed tasks the on-time rate is vacuously perfect.
	assert.Equal(t, 100, m.OnTimeRate)
	assert.Equal(t, 0.0, m.AvgMinutesPerTask)
	assert.Empty(t, m.ActiveTasks)
	assert.Empty(t, m.AttentionTasks)

	// One rollup row per roster member even with nothing assigned.
	require.Len(t, m.Members, 2)
	assert.Equal(t, "Vito", m.Members[0].Name)
	assert.Equal(t, 0, m.Members[0].Assigned)
	assert.Equal(t, 0, m.Members[0].CompletionPct)
}

func TestComputeCounts(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)
	endOnTime := time.Date(2025, time.November, 14, 15, 30, 0, 0, time.UTC)
	endLate := time.Date(2025, time.November, 16, 9, 0, 0, 0, time.UTC)

	tasks := []*entities.Task{
		{
			ID: "1", Pic: "Vito", Status: entities.StatusCompleted,
			EndDate:       entities.NewDate(2025, time.November, 15),
			ActualEndTime: &endOnTime, DurationMinutes: 390,
		},
		{
			ID: "2", Pic: "Vito", Status: entities.StatusCompleted,
			EndDate:       entities.NewDate(2025, time.November, 15),
			ActualEndTime: &endLate, DurationMinutes: 120,
		},
		{
			// In progress and past deadline: both active and overdue.
			ID: "3", Pic: "Rashid", Status: entities.StatusInProgress,
			EndDate: entities.NewDate(2025, time.November, 10),
		},
		{
			ID: "4", Pic: "Rashid", Status: entities.StatusNotStarted,
			EndDate: entities.NewDate(2025, time.November, 25),
		},
	}

	m := Compute(tasks, []string{"Vito", "Rashid", "Sarah"}, now)

	assert.Equal(t, 4, m.Total)
	assert.Equal(t, 2, m.Completed)
	assert.Equal(t, 1, m.InProgress)
	assert.Equal(t, 1, m.NotStarted)
	assert.Equal(t, 1, m.Overdue)

	assert.Equal(t, 50, m.CompletionRate)
	assert.Equal(t, 50, m.OnTimeRate)
	assert.Equal(t, 255.0, m.AvgMinutesPerTask)

	require.Len(t, m.ActiveTasks, 1)
	assert.Equal(t, "3", m.ActiveTasks[0].ID)
	require.Len(t, m.AttentionTasks, 1)
	assert.Equal(t, "3", m.AttentionTasks[0].ID)

	require.Len(t, m.Members, 3)
	vito := m.Members[0]
	assert.Equal(t, 2, vito.Assigned)
	assert.Equal(t, 2, vito.Completed)
	assert.Equal(t, 1, vito.Late)
	assert.Equal(t, 100, vito.CompletionPct)
	// 510 minutes, rounded to one decimal of hours.
	assert.Equal(t, 8.5, vito.Hours)

	rashid := m.Members[1]
	assert.Equal(t, 2, rashid.Assigned)
	assert.Equal(t, 0, rashid.Completed)
	assert.Equal(t, 0.0, rashid.Hours)
	assert.Equal(t, 0, rashid.CompletionPct)

	sarah := m.Members[2]
	assert.Equal(t, 0, sarah.Assigned)
}

func TestComputeCompletedNeverOverdue(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)
	tasks := []*entities.Task{
		{ID: "1", Status: entities.StatusCompleted, EndDate: entities.NewDate(2025, time.November, 10)},
	}

	m := Compute(tasks, nil, now)
	assert.Equal(t, 0, m.Overdue)
	assert.Empty(t, m.AttentionTasks)
}

func TestComputeRateRounding(t *testing.T) {
	tasks := []*entities.Task{
		{ID: "1", Status: entities.StatusCompleted},
		{ID: "2", Status: entities.StatusNotStarted},
		{ID: "3", Status: entities.StatusNotStarted},
	}

	m := Compute(tasks, nil, time.Now())
	// 1 of 3 rounds to 33, not truncates.
	assert.Equal(t, 33, m.CompletionRate)
}

func TestDashboardAppliesFilter(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)
	repo := newFakeTaskRepo(
		&entities.Task{ID: "1", Pic: "Vito", Brand: "Nike", Status: entities.StatusCompleted},
		&entities.Task{ID: "2", Pic: "Rashid", Brand: "Samsung", Status: entities.StatusNotStarted},
	)
	roster := NewRosterService(newStaticRoster())
	svc := NewMetricsService(repo, roster, nopLogger())

	m, err := svc.Dashboard(context.Background(), query.FilterState{Brand: "Nike"}, now)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Total)
	assert.Equal(t, 1, m.Completed)
	assert.Equal(t, 100, m.CompletionRate)

	// Rollup rows always follow the roster, not the filtered tasks.
	require.Len(t, m.Members, 4)
}
