package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sprintdeck/scrumcore/internal/adapters/http/dto"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// SprintHandler serves the sprint endpoints, including the sprint backlog
// items and tasks the sprint owns.
type SprintHandler struct {
	svc ports.SprintService
}

func NewSprintHandler(svc ports.SprintService) *SprintHandler {
	return &SprintHandler{svc: svc}
}

// CreateSprint handles POST /api/v1/sprints.
func (h *SprintHandler) CreateSprint(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSprintRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.CreateSprint(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToSprintResponse(s))
}

// GetSprint handles GET /api/v1/sprints/{id}.
func (h *SprintHandler) GetSprint(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSprint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}

// ListTeamSprints handles GET /api/v1/teams/{teamId}/sprints.
func (h *SprintHandler) ListTeamSprints(w http.ResponseWriter, r *http.Request) {
	sprints, err := h.svc.ListTeamSprints(r.Context(), chi.URLParam(r, "teamId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintListResponse(sprints))
}

// UpdateGoal handles PATCH /api/v1/sprints/{id}/goal.
func (h *SprintHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGoalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateGoal(r.Context(), chi.URLParam(r, "id"), req.Goal)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}

// StartSprint handles POST /api/v1/sprints/{id}/start.
func (h *SprintHandler) StartSprint(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.StartSprint)
}

// StartReview handles POST /api/v1/sprints/{id}/review.
func (h *SprintHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.StartReview)
}

// StartRetrospective handles POST /api/v1/sprints/{id}/retrospective.
func (h *SprintHandler) StartRetrospective(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.StartRetrospective)
}

// CompleteSprint handles POST /api/v1/sprints/{id}/complete.
func (h *SprintHandler) CompleteSprint(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteSprintRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.CompleteSprint(r.Context(), chi.URLParam(r, "id"), req.ActualVelocity)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}

// CancelSprint handles POST /api/v1/sprints/{id}/cancel.
func (h *SprintHandler) CancelSprint(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelSprintRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.CancelSprint(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}

// AddItem handles POST /api/v1/sprints/{id}/items.
func (h *SprintHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddSprintItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.AddItem(r.Context(), chi.URLParam(r, "id"), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToSprintResponse(s))
}

// RemoveItem handles DELETE /api/v1/sprints/{id}/items/{itemId}.
func (h *SprintHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTask handles POST /api/v1/sprints/{id}/items/{itemId}/tasks.
func (h *SprintHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req dto.AddTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.AddTask(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToSprintResponse(s))
}

// RemoveTask handles DELETE /api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}.
func (h *SprintHandler) RemoveTask(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveTask(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), chi.URLParam(r, "taskId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StartTask handles POST /api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/start.
func (h *SprintHandler) StartTask(w http.ResponseWriter, r *http.Request) {
	h.taskTransition(w, r, h.svc.StartTask)
}

// CompleteTask handles POST /api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/complete.
func (h *SprintHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	h.taskTransition(w, r, h.svc.CompleteTask)
}

// BlockTask handles POST /api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/block.
func (h *SprintHandler) BlockTask(w http.ResponseWriter, r *http.Request) {
	h.taskTransition(w, r, h.svc.BlockTask)
}

// UnblockTask handles POST /api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/unblock.
func (h *SprintHandler) UnblockTask(w http.ResponseWriter, r *http.Request) {
	h.taskTransition(w, r, h.svc.UnblockTask)
}

// UpdateTaskRemaining handles PUT /api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/remaining.
func (h *SprintHandler) UpdateTaskRemaining(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRemainingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateTaskRemainingHours(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), chi.URLParam(r, "taskId"), req.Hours)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}

// UpdateItemRemaining handles PUT /api/v1/sprints/{id}/items/{itemId}/remaining.
func (h *SprintHandler) UpdateItemRemaining(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRemainingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.UpdateItemRemainingWork(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), req.Hours)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}

// Progress handles GET /api/v1/sprints/{id}/progress.
func (h *SprintHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Progress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProgressResponse(p))
}

// transition runs a body-less sprint lifecycle operation.
func (h *SprintHandler) transition(
	w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, sprintID string) (*sprint.Sprint, error),
) {
	s, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}

// taskTransition runs a body-less task lifecycle operation.
func (h *SprintHandler) taskTransition(
	w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, sprintID, itemID, taskID string) (*sprint.Sprint, error),
) {
	s, err := op(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), chi.URLParam(r, "taskId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSprintResponse(s))
}
