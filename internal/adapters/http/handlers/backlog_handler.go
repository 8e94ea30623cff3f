package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sprintdeck/scrumcore/internal/adapters/http/dto"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// BacklogHandler serves the product backlog endpoints. Item mutations return
// the whole backlog: items are owned entities, not resources of their own.
type BacklogHandler struct {
	svc ports.BacklogService
}

func NewBacklogHandler(svc ports.BacklogService) *BacklogHandler {
	return &BacklogHandler{svc: svc}
}

// CreateBacklog handles POST /api/v1/backlogs.
func (h *BacklogHandler) CreateBacklog(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBacklogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.CreateBacklog(r.Context(), req.TeamID, req.Notes)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToBacklogResponse(b))
}

// GetBacklog handles GET /api/v1/backlogs/{id}.
func (h *BacklogHandler) GetBacklog(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetBacklog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// GetTeamBacklog handles GET /api/v1/teams/{teamId}/backlog.
func (h *BacklogHandler) GetTeamBacklog(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetTeamBacklog(r.Context(), chi.URLParam(r, "teamId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// AddItem handles POST /api/v1/backlogs/{id}/items.
func (h *BacklogHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBacklogItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.AddItem(r.Context(), chi.URLParam(r, "id"), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToBacklogResponse(b))
}

// RemoveItem handles DELETE /api/v1/backlogs/{id}/items/{itemId}.
func (h *BacklogHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderItems handles POST /api/v1/backlogs/{id}/reorder.
func (h *BacklogHandler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderItemsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.ReorderItems(r.Context(), chi.URLParam(r, "id"), req.ToChanges())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// Refine handles POST /api/v1/backlogs/{id}/refine.
func (h *BacklogHandler) Refine(w http.ResponseWriter, r *http.Request) {
	var req dto.RefineBacklogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.MarkAsRefined(r.Context(), chi.URLParam(r, "id"), req.Notes)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// EstimateItem handles POST /api/v1/backlogs/{id}/items/{itemId}/estimate.
func (h *BacklogHandler) EstimateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.EstimateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.EstimateItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), req.StoryPoints)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// SetAcceptanceCriteria handles PUT /api/v1/backlogs/{id}/items/{itemId}/acceptance-criteria.
func (h *BacklogHandler) SetAcceptanceCriteria(w http.ResponseWriter, r *http.Request) {
	var req dto.AcceptanceCriteriaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.SetAcceptanceCriteria(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), req.Criteria)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// UpdateItem handles PATCH /api/v1/backlogs/{id}/items/{itemId}.
func (h *BacklogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBacklogItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.svc.UpdateItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// StartItem handles POST /api/v1/backlogs/{id}/items/{itemId}/start.
func (h *BacklogHandler) StartItem(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.StartItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// CompleteItem handles POST /api/v1/backlogs/{id}/items/{itemId}/complete.
func (h *BacklogHandler) CompleteItem(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.CompleteItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}

// ResetItem handles POST /api/v1/backlogs/{id}/items/{itemId}/reset.
func (h *BacklogHandler) ResetItem(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.ResetItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBacklogResponse(b))
}
