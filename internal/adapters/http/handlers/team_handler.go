package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sprintdeck/scrumcore/internal/adapters/http/dto"
	"github.com/sprintdeck/scrumcore/internal/ports"
)

// TeamHandler serves the team endpoints.
type TeamHandler struct {
	svc ports.TeamService
}

func NewTeamHandler(svc ports.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// CreateTeam handles POST /api/v1/teams.
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTeamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.CreateTeam(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToTeamResponse(t))
}

// GetTeam handles GET /api/v1/teams/{id}.
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamResponse(t))
}

// ListTeams handles GET /api/v1/teams.
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.ListTeams(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamListResponse(teams))
}

// UpdateTeam handles PATCH /api/v1/teams/{id}.
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTeamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateTeamInfo(r.Context(), chi.URLParam(r, "id"), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamResponse(t))
}

// AddMember handles POST /api/v1/teams/{id}/members.
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.AddMember(r.Context(), chi.URLParam(r, "id"), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToTeamResponse(t))
}

// RemoveMember handles DELETE /api/v1/teams/{id}/members/{memberId}.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "memberId"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateVelocity handles PUT /api/v1/teams/{id}/velocity.
func (h *TeamHandler) UpdateVelocity(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateVelocityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateVelocity(r.Context(), chi.URLParam(r, "id"), req.Velocity)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeamResponse(t))
}

// DeactivateTeam handles POST /api/v1/teams/{id}/deactivate.
func (h *TeamHandler) DeactivateTeam(w http.ResponseWriter, r *http.Request) {
	var req dto.DeactivateTeamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.DeactivateTeam(r.Context(), chi.URLParam(r, "id"), req.Reason); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReactivateTeam handles POST /api/v1/teams/{id}/reactivate.
func (h *TeamHandler) ReactivateTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ReactivateTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
