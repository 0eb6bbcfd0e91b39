package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/task"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Create implements TaskHandler. HR-gated by middleware.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq task.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.taskService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task created", "task_id", created.ID, "user_id", created.UserID)
	response.Created(w, "Task created", task.ToResponse(created))
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq task.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.taskService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update task service error", "error", err, "task_id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated", task.ToResponse(updated))
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, task.ToResponseList(tasks))
}
