package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-list-api/internal/model"
	"github.com/BuzzLyutic/task-list-api/internal/repo"
	"github.com/BuzzLyutic/task-list-api/internal/service"
	"github.com/BuzzLyutic/task-list-api/pkg/respond"
)

const healthTimeout = 2 * time.Second

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err, "failed to list tasks")
		return
	}
	h.write(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	obj, err := decodeObject(w, r)
	if err != nil {
		h.handleErrors(w, r, err, "failed to create task")
		return
	}

	var req model.CreateTaskInput
	if err := decodeField(obj, "title", &req.Title, service.ErrTitleRequired); err != nil {
		h.handleErrors(w, r, err, "failed to create task")
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err, "failed to create task")
		return
	}
	h.write(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	// Сначала id, потом тело - порядок проверок важен для текста ошибки
	id, err := service.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err, "failed to update task")
		return
	}

	obj, err := decodeObject(w, r)
	if err != nil {
		h.handleErrors(w, r, err, "failed to update task")
		return
	}

	var req model.UpdateTaskInput
	if err := decodeField(obj, "completed", &req.Completed, service.ErrCompletedNotBool); err != nil {
		h.handleErrors(w, r, err, "failed to update task")
		return
	}

	task, err := h.service.SetCompleted(r.Context(), id, req)
	if err != nil {
		h.handleErrors(w, r, err, "failed to update task")
		return
	}
	h.write(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err, "failed to delete task")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err, "failed to delete task")
		return
	}
	respond.NoContent(w, r)
}

func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	ok, err := h.service.Healthy(ctx)
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		h.write(w, r, http.StatusInternalServerError, model.Health{OK: false, DB: false})
		return
	}
	h.write(w, r, http.StatusOK, model.Health{OK: ok, DB: ok})
}

func (h *TaskHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, "not found")
}

// handleErrors переводит ошибку в HTTP-ответ; детали ошибок БД остаются только в логе
func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.writeError(w, r, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, repo.ErrorNotFound):
		h.writeError(w, r, http.StatusNotFound, "task not found")
	default:
		h.logger.Error(internalMsg,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.writeError(w, r, http.StatusInternalServerError, internalMsg)
	}
}

func (h *TaskHandler) write(w http.ResponseWriter, r *http.Request, code int, data any) {
	if err := respond.JSON(w, r, code, data); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *TaskHandler) writeError(w http.ResponseWriter, r *http.Request, code int, message string) {
	if err := respond.Error(w, r, code, message); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
