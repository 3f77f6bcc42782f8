package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/creativepulse/core/internal/domain/entities"
)

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  entities.Status
		endDate entities.Date
		want    bool
	}{
		{"past deadline, in progress", entities.StatusInProgress, entities.NewDate(2025, time.November, 10), true},
		{"past deadline, not started", entities.StatusNotStarted, entities.NewDate(2025, time.November, 10), true},
		{"past deadline, waiting review", entities.StatusWaitingReview, entities.NewDate(2025, time.November, 19), true},
		{"past deadline, completed", entities.StatusCompleted, entities.NewDate(2025, time.November, 10), false},
		{"due today", entities.StatusInProgress, entities.NewDate(2025, time.November, 20), false},
		{"due tomorrow", entities.StatusInProgress, entities.NewDate(2025, time.November, 21), false},
		{"no deadline", entities.StatusInProgress, entities.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &entities.Task{Status: tt.status, EndDate: tt.endDate}
			assert.Equal(t, tt.want, task.IsOverdue(now))
		})
	}
}

func TestTaskDisplayStatus(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)

	overdue := &entities.Task{Status: entities.StatusInProgress, EndDate: entities.NewDate(2025, time.November, 10)}
	assert.Equal(t, entities.StatusOverdue, overdue.DisplayStatus(now))
	// The stored status is untouched; Overdue is display-only.
	assert.Equal(t, entities.StatusInProgress, overdue.Status)

	onTrack := &entities.Task{Status: entities.StatusInProgress, EndDate: entities.NewDate(2025, time.November, 25)}
	assert.Equal(t, entities.StatusInProgress, onTrack.DisplayStatus(now))

	done := &entities.Task{Status: entities.StatusCompleted, EndDate: entities.NewDate(2025, time.November, 10)}
	assert.Equal(t, entities.StatusCompleted, done.DisplayStatus(now))
}

func TestTaskTransitionGuards(t *testing.T) {
	canStart := map[entities.Status]bool{
		entities.StatusNotStarted:     true,
		entities.StatusRevisionNeeded: true,
		entities.StatusInProgress:     false,
		entities.StatusWaitingReview:  false,
		entities.StatusCompleted:      false,
	}
	for status, want := range canStart {
		task := &entities.Task{Status: status}
		assert.Equal(t, want, task.CanStart(), "CanStart from %s", status)
		assert.Equal(t, status == entities.StatusInProgress, task.CanSubmit(), "CanSubmit from %s", status)
		assert.Equal(t, status == entities.StatusWaitingReview, task.CanReview(), "CanReview from %s", status)
	}
}

func TestTaskIsActive(t *testing.T) {
	active := []entities.Status{entities.StatusInProgress, entities.StatusWaitingReview, entities.StatusRevisionNeeded}
	for _, status := range active {
		task := &entities.Task{Status: status}
		assert.True(t, task.IsActive(), "IsActive from %s", status)
	}
	for _, status := range []entities.Status{entities.StatusNotStarted, entities.StatusCompleted} {
		task := &entities.Task{Status: status}
		assert.False(t, task.IsActive(), "IsActive from %s", status)
	}
}

func TestTaskCompletedOnTime(t *testing.T) {
	endDate := entities.NewDate(2025, time.November, 15)

	beforeDeadline := time.Date(2025, time.November, 15, 18, 0, 0, 0, time.UTC)
	afterDeadline := time.Date(2025, time.November, 16, 0, 30, 0, 0, time.UTC)

	onTime := &entities.Task{Status: entities.StatusCompleted, EndDate: endDate, ActualEndTime: &beforeDeadline}
	assert.True(t, onTime.CompletedOnTime())

	late := &entities.Task{Status: entities.StatusCompleted, EndDate: endDate, ActualEndTime: &afterDeadline}
	assert.False(t, late.CompletedOnTime())

	// No recorded end time counts as on-time.
	noEnd := &entities.Task{Status: entities.StatusCompleted, EndDate: endDate}
	assert.True(t, noEnd.CompletedOnTime())
}

func TestTaskCycleBaseline(t *testing.T) {
	started := time.Date(2025, time.November, 10, 9, 0, 0, 0, time.UTC)
	resumed := time.Date(2025, time.November, 12, 14, 0, 0, 0, time.UTC)

	task := &entities.Task{ActualStartTime: &started}
	assert.Equal(t, &started, task.CycleBaseline())

	task.ResumedAt = &resumed
	assert.Equal(t, &resumed, task.CycleBaseline())

	assert.Nil(t, (&entities.Task{}).CycleBaseline())
}

func TestTaskClone(t *testing.T) {
	started := time.Date(2025, time.November, 10, 9, 0, 0, 0, time.UTC)
	original := &entities.Task{
		ID:              "1",
		Title:           "Holiday Reels",
		Subtasks:        []string{"Scripting", "Editing"},
		References:      []entities.Reference{{ID: "r1", Type: entities.ProofTypeLink, Name: "Ref", URL: "#"}},
		ActualStartTime: &started,
	}

	clone := original.Clone()
	clone.Title = "Changed"
	clone.Subtasks[0] = "Changed"
	clone.References[0].Name = "Changed"
	*clone.ActualStartTime = clone.ActualStartTime.Add(time.Hour)

	assert.Equal(t, "Holiday Reels", original.Title)
	assert.Equal(t, "Scripting", original.Subtasks[0])
	assert.Equal(t, "Ref", original.References[0].Name)
	assert.Equal(t, started, *original.ActualStartTime)
}

func TestUserPermissions(t *testing.T) {
	admin := &entities.User{ID: "admin1", Name: "Jane Doe", Role: entities.RoleAdmin}
	member := &entities.User{ID: "u1", Name: "Vito", Role: entities.RoleMember}

	own := &entities.Task{Pic: "Vito"}
	other := &entities.Task{Pic: "Rashid"}

	assert.True(t, admin.IsAdmin())
	assert.False(t, member.IsAdmin())

	assert.True(t, admin.CanWorkOn(other))
	assert.True(t, member.CanWorkOn(own))
	assert.False(t, member.CanWorkOn(other))

	assert.True(t, admin.CanSee(other))
	assert.True(t, member.CanSee(own))
	assert.False(t, member.CanSee(other))
}

func TestSeedData(t *testing.T) {
	users := entities.SeedUsers()
	assert.Len(t, users, 5)
	admins := 0
	for _, u := range users {
		assert.True(t, u.Role.IsValid())
		if u.IsAdmin() {
			admins++
		}
	}
	assert.Equal(t, 1, admins)

	tasks := entities.SeedTasks()
	assert.Len(t, tasks, 5)
	for _, task := range tasks {
		// Overdue never appears as a stored status.
		assert.True(t, task.Status.IsValid(), "seed task %s has stored status %q", task.ID, task.Status)
	}
}
