package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creativepulse/core/internal/domain/entities"
	"github.com/creativepulse/core/internal/domain/query"
	"github.com/creativepulse/core/internal/infrastructure/logger"
	"github.com/creativepulse/core/internal/ports"
)

// actorContextKey is where the roster middleware stores the resolved
// acting user.
const actorContextKey = "actor"

// MessageResponse is a generic message payload
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskResponse decorates a task with its derived display status.
// The stored status never reads "Overdue"; the display status may.
type TaskResponse struct {
	*entities.Task
	DisplayStatus entities.Status `json:"displayStatus"`
}

func taskResponse(t *entities.Task, now time.Time) TaskResponse {
	return TaskResponse{Task: t, DisplayStatus: t.DisplayStatus(now)}
}

func taskListResponse(tasks []*entities.Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = taskResponse(t, now)
	}
	return out
}

// SetActor stores the resolved acting user on the request context.
func SetActor(c echo.Context, u *entities.User) {
	c.Set(actorContextKey, u)
}

func actorFromContext(c echo.Context) (*entities.User, error) {
	u, ok := c.Get(actorContextKey).(*entities.User)
	if !ok || u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unknown actor")
	}
	return u, nil
}

// filterFromQuery builds a FilterState from request query parameters.
func filterFromQuery(c echo.Context) (query.FilterState, error) {
	f := query.FilterState{
		Brand:    c.QueryParam("brand"),
		Pic:      c.QueryParam("pic"),
		Campaign: c.QueryParam("campaign"),
	}

	if v := c.QueryParam("start_date"); v != "" {
		d, err := entities.ParseDate(v)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "Invalid start_date")
		}
		f.StartDate = &d
	}
	if v := c.QueryParam("end_date"); v != "" {
		d, err := entities.ParseDate(v)
		if err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "Invalid end_date")
		}
		f.EndDate = &d
	}

	return f, nil
}

// domainError maps domain errors onto HTTP status codes.
func domainError(err error) error {
	switch {
	case errors.Is(err, entities.ErrTaskNotFound), errors.Is(err, entities.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, entities.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, entities.ErrMissingProof),
		errors.Is(err, entities.ErrMissingFeedback),
		errors.Is(err, entities.ErrMissingTitle),
		errors.Is(err, entities.ErrTaskExists):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal error")
	}
}

// TaskHandler handles board CRUD and lifecycle transitions
type TaskHandler struct {
	taskService      ports.TaskService
	lifecycleService ports.LifecycleService
	logger           *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, lifecycleService ports.LifecycleService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService:      taskService,
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

// ListTasks returns the actor-visible, filtered board.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), actor, filter)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err)
		return domainError(err)
	}

	return c.JSON(http.StatusOK, taskListResponse(tasks, time.Now()))
}

// CreateTask handles task creation
func (h *TaskHandler) CreateTask(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), actor, req)
	if err != nil {
		h.logger.Error("Create task failed", "error", err, "actor", actor.Name)
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, taskResponse(task, time.Now()))
}

// GetTask returns one task by id.
func (h *TaskHandler) GetTask(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// UpdateTask patches descriptive and scheduling fields.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		h.logger.Error("Update task failed", "error", err, "task_id", c.Param("id"))
		return domainError(err)
	}

	return c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// DeleteTask removes a task permanently.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), actor, c.Param("id")); err != nil {
		h.logger.Error("Delete task failed", "error", err, "task_id", c.Param("id"))
		return domainError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted"})
}

// StartTask begins or resumes work on a task.
func (h *TaskHandler) StartTask(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	task, err := h.lifecycleService.Start(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// SubmitTask submits proof of work for review.
func (h *TaskHandler) SubmitTask(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req ports.SubmitWorkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.lifecycleService.Submit(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// ApproveTask completes a task under review.
func (h *TaskHandler) ApproveTask(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	task, err := h.lifecycleService.Approve(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// RevisionRequest carries the reviewer's feedback.
type RevisionRequest struct {
	Feedback string `json:"feedback"`
}

// RequestRevision sends a reviewed task back to its PIC.
func (h *TaskHandler) RequestRevision(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req RevisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	task, err := h.lifecycleService.RequestRevision(c.Request().Context(), actor, c.Param("id"), req.Feedback)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, taskResponse(task, time.Now()))
}

// DashboardHandler serves the aggregated dashboard metrics
type DashboardHandler struct {
	metricsService ports.MetricsService
	logger         *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(metricsService ports.MetricsService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		metricsService: metricsService,
		logger:         logger,
	}
}

// Metrics returns the dashboard aggregates over the filtered collection.
func (h *DashboardHandler) Metrics(c echo.Context) error {
	if _, err := actorFromContext(c); err != nil {
		return err
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}

	metrics, err := h.metricsService.Dashboard(c.Request().Context(), filter, time.Now())
	if err != nil {
		h.logger.Error("Dashboard metrics failed", "error", err)
		return domainError(err)
	}

	return c.JSON(http.StatusOK, metrics)
}

// UserHandler serves the static roster
type UserHandler struct {
	roster ports.RosterService
	logger *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(roster ports.RosterService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		roster: roster,
		logger: logger,
	}
}

// ListUsers returns the full roster.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.roster.ListUsers(c.Request().Context())
	if err != nil {
		h.logger.Error("List users failed", "error", err)
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ChecklistHandler serves AI subtask suggestions for task drafts
type ChecklistHandler struct {
	checklist ports.ChecklistService
	logger    *logger.Logger
}

// NewChecklistHandler creates a new checklist handler
func NewChecklistHandler(checklist ports.ChecklistService, logger *logger.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		checklist: checklist,
		logger:    logger,
	}
}

// ChecklistRequest describes the draft the suggestions are for.
type ChecklistRequest struct {
	Title string `json:"title" validate:"required"`
	Brand string `json:"brand"`
	Pic   string `json:"pic"`
}

// ChecklistResponse carries the suggested subtask labels.
type ChecklistResponse struct {
	Subtasks []string `json:"subtasks"`
}

// Generate returns suggested subtasks for a draft task. Failures in
// the upstream call surface as the fallback checklist, never an error.
func (h *ChecklistHandler) Generate(c echo.Context) error {
	if _, err := actorFromContext(c); err != nil {
		return err
	}

	var req ChecklistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	subtasks := h.checklist.Generate(c.Request().Context(), req.Title, req.Brand, req.Pic)

	return c.JSON(http.StatusOK, ChecklistResponse{Subtasks: subtasks})
}
