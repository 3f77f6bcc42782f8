package services

import (
	"context"
	"fmt"
	"time"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/infrastructure/logger"
	"github.com/creativepulse/core/internal/ports"
)

// LifecycleService implements the task state machine. It is the only
// component allowed to change a task's status or time-tracking fields;
// every transition validates the actor's role, the current state and
// the transition payload before committing anything, so a failed call
// leaves the stored task untouched.
type LifecycleService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(taskRepo ports.TaskRepository, logger *logger.Logger) *LifecycleService {
	return &LifecycleService{
		taskRepo: taskRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Start moves a task into In Progress. Legal from Not Started and
// Revision Needed. The first start stamps ActualStartTime; restarts
// after a revision keep the original start and only reset the cycle
// baseline used for duration accumulation.
func (s *LifecycleService) Start(ctx context.Context, actor *entities.User, taskID string) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !actor.CanWorkOn(task) {
		return nil, fmt.Errorf("%w: %s cannot start a task assigned to %s", entities.ErrForbidden, actor.Name, task.Pic)
	}
	if !task.CanStart() {
		return nil, fmt.Errorf("%w: task is %q, start requires %q or %q",
			entities.ErrInvalidTransition, task.Status, entities.StatusNotStarted, entities.StatusRevisionNeeded)
	}

	now := s.now()
	task.Status = entities.StatusInProgress
	if task.ActualStartTime == nil {
		task.ActualStartTime = &now
	}
	resumed := now
	task.ResumedAt = &resumed

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task started", "task_id", task.ID, "pic", task.Pic, "actor", actor.Name)

	return task, nil
}

// Submit moves an In Progress task to Waiting Review with the supplied
// proof of work, stamping the end time and folding the cycle's elapsed
// work into the cumulative duration.
func (s *LifecycleService) Submit(ctx context.Context, actor *entities.User, taskID string, req ports.SubmitWorkRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !actor.CanWorkOn(task) {
		return nil, fmt.Errorf("%w: %s cannot submit a task assigned to %s", entities.ErrForbidden, actor.Name, task.Pic)
	}
	if !task.CanSubmit() {
		return nil, fmt.Errorf("%w: task is %q, submit requires %q",
			entities.ErrInvalidTransition, task.Status, entities.StatusInProgress)
	}
	if req.ProofOfWork == "" {
		return nil, entities.ErrMissingProof
	}
	if !req.ProofType.IsValid() {
		return nil, fmt.Errorf("%w: unknown proof type %q", entities.ErrMissingProof, req.ProofType)
	}

	now := s.now()
	baseline := now
	if b := task.CycleBaseline(); b != nil {
		baseline = *b
	}
	elapsed := now.Sub(baseline)
	if elapsed < 0 {
		elapsed = 0
	}

	task.Status = entities.StatusWaitingReview
	task.ActualEndTime = &now
	task.DurationMinutes += int(elapsed.Minutes())
	task.ProofType = req.ProofType
	task.ProofOfWork = req.ProofOfWork

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Work submitted for review",
		"task_id", task.ID,
		"pic", task.Pic,
		"duration_minutes", task.DurationMinutes,
	)

	return task, nil
}

// Approve completes a task under review. Admin only; time-tracking
// fields are left exactly as submission recorded them.
func (s *LifecycleService) Approve(ctx context.Context, actor *entities.User, taskID string) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may approve work", entities.ErrForbidden)
	}
	if !task.CanReview() {
		return nil, fmt.Errorf("%w: task is %q, approve requires %q",
			entities.ErrInvalidTransition, task.Status, entities.StatusWaitingReview)
	}

	task.Status = entities.StatusCompleted

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task approved", "task_id", task.ID, "pic", task.Pic, "reviewer", actor.Name)

	return task, nil
}

// RequestRevision sends a reviewed task back with feedback. Clearing
// ActualEndTime reopens the timing window: the next start resumes
// accumulation without touching the original start time.
func (s *LifecycleService) RequestRevision(ctx context.Context, actor *entities.User, taskID string, feedback string) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may request revisions", entities.ErrForbidden)
	}
	if !task.CanReview() {
		return nil, fmt.Errorf("%w: task is %q, revision requires %q",
			entities.ErrInvalidTransition, task.Status, entities.StatusWaitingReview)
	}
	if feedback == "" {
		return nil, entities.ErrMissingFeedback
	}

	task.Status = entities.StatusRevisionNeeded
	task.RevisionFeedback = feedback
	task.ActualEndTime = nil

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Revision requested", "task_id", task.ID, "pic", task.Pic, "reviewer", actor.Name)

	return task, nil
}
