package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/domain/query"
	"github.com/creativepulse/core/internal/infrastructure/logger"
	"github.com/creativepulse/core/internal/ports"
)

// TaskService handles task CRUD. Status and time-tracking fields are
// off limits here: creation forces Not Started and updates never touch
// them, so the lifecycle service stays the single write path for state.
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask creates a new task. Admin only.
func (s *TaskService) CreateTask(ctx context.Context, actor *entities.User, req ports.CreateTaskRequest) (*entities.Task, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may create tasks", entities.ErrForbidden)
	}
	if req.Title == "" {
		return nil, entities.ErrMissingTitle
	}

	task := &entities.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Pic:         req.Pic,
		Brand:       req.Brand,
		Campaign:    req.Campaign,
		Status:      entities.StatusNotStarted,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Subtasks:    req.Subtasks,
		References:  req.References,
	}
	if task.Subtasks == nil {
		task.Subtasks = []string{}
	}
	if task.References == nil {
		task.References = []entities.Reference{}
	}
	for i := range task.References {
		if task.References[i].ID == "" {
			task.References[i].ID = uuid.NewString()
		}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "title", task.Title, "pic", task.Pic)

	return task, nil
}

// GetTask retrieves a task by ID, respecting member visibility.
func (s *TaskService) GetTask(ctx context.Context, actor *entities.User, id string) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanSee(task) {
		return nil, entities.ErrTaskNotFound
	}
	return task, nil
}

// UpdateTask patches a task's descriptive and scheduling fields.
// Admin only; lifecycle fields are not reachable through this path.
func (s *TaskService) UpdateTask(ctx context.Context, actor *entities.User, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins may edit tasks", entities.ErrForbidden)
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, entities.ErrMissingTitle
		}
		task.Title = *req.Title
	}
	if req.Pic != nil {
		task.Pic = *req.Pic
	}
	if req.Brand != nil {
		task.Brand = *req.Brand
	}
	if req.Campaign != nil {
		task.Campaign = *req.Campaign
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Subtasks != nil {
		task.Subtasks = *req.Subtasks
	}
	if req.References != nil {
		task.References = *req.References
		for i := range task.References {
			if task.References[i].ID == "" {
				task.References[i].ID = uuid.NewString()
			}
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task updated", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// DeleteTask permanently removes a task. Admin only; hard delete.
func (s *TaskService) DeleteTask(ctx context.Context, actor *entities.User, id string) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins may delete tasks", entities.ErrForbidden)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Task deleted", "task_id", id, "actor", actor.Name)

	return nil
}

// ListTasks projects the filtered collection for the actor. Members
// only ever see their own assignments; admins see the whole board.
func (s *TaskService) ListTasks(ctx context.Context, actor *entities.User, filter query.FilterState) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks = query.Apply(tasks, filter)

	if actor.IsAdmin() {
		return tasks, nil
	}
	visible := make([]*entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if actor.CanSee(t) {
			visible = append(visible, t)
		}
	}
	return visible, nil
}
