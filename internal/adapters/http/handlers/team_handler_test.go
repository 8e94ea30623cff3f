package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sprintdeck/scrumcore/internal/adapters/http/dto"
	"github.com/sprintdeck/scrumcore/internal/adapters/http/handlers"
	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
	"github.com/sprintdeck/scrumcore/mocks"
)

func buildTeam(t *testing.T) *team.Team {
	t.Helper()

	name, err := team.NewName("Platform")
	if err != nil {
		t.Fatal(err)
	}
	desc, err := team.NewDescription("Platform engineering")
	if err != nil {
		t.Fatal(err)
	}
	length, err := team.NewSprintLength(2)
	if err != nil {
		t.Fatal(err)
	}
	tm, err := team.Create(team.NewID(), name, desc, length)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

// --- CreateTeam ---

func TestCreateTeam_Success(t *testing.T) {
	t.Parallel()

	tm := buildTeam(t)

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().
		CreateTeam(mock.Anything, ports.CreateTeamInput{
			Name:              "Platform",
			Description:       "Platform engineering",
			SprintLengthWeeks: 2,
		}).
		Return(tm, nil)

	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{
		"name":                "Platform",
		"description":         "Platform engineering",
		"sprint_length_weeks": 2,
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", body)
	h.CreateTeam(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.TeamResponse](t, rec)
	if resp.ID != tm.ID().String() {
		t.Errorf("id = %q, want %q", resp.ID, tm.ID().String())
	}
	if resp.Name != "Platform" {
		t.Errorf("name = %q, want %q", resp.Name, "Platform")
	}
	if !resp.Active {
		t.Error("expected new team to be active")
	}
	if resp.Members == nil {
		t.Error("members should be an empty array, not null")
	}
}

func TestCreateTeam_InvalidJSON(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	h := handlers.NewTeamHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", strings.NewReader("{not json"))
	h.CreateTeam(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Status != http.StatusBadRequest {
		t.Errorf("problem status = %d, want %d", resp.Status, http.StatusBadRequest)
	}
}

func TestCreateTeam_MissingName(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{"sprint_length_weeks": 2})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", body)
	h.CreateTeam(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().
		CreateTeam(mock.Anything, mock.Anything).
		Return(nil, domain.Conflictf("team name %q is already taken", "Platform"))

	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{"name": "Platform", "sprint_length_weeks": 2})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", body)
	h.CreateTeam(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- GetTeam ---

func TestGetTeam_Success(t *testing.T) {
	t.Parallel()

	tm := buildTeam(t)

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().GetTeam(mock.Anything, tm.ID().String()).Return(tm, nil)

	h := handlers.NewTeamHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/"+tm.ID().String(), nil)
	req = withChiParams(req, map[string]string{"id": tm.ID().String()})
	h.GetTeam(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.TeamResponse](t, rec)
	if resp.SprintLengthWeeks != 2 {
		t.Errorf("sprint_length_weeks = %d, want 2", resp.SprintLengthWeeks)
	}
}

func TestGetTeam_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().
		GetTeam(mock.Anything, "missing").
		Return(nil, domain.NotFoundf("team %s not found", "missing"))

	h := handlers.NewTeamHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/missing", nil)
	req = withChiParams(req, map[string]string{"id": "missing"})
	h.GetTeam(rec, req)

	requireStatus(t, rec, http.StatusNotFound)

	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

// --- ListTeams ---

func TestListTeams_Success(t *testing.T) {
	t.Parallel()

	tm := buildTeam(t)

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().ListTeams(mock.Anything).Return([]*team.Team{tm}, nil)

	h := handlers.NewTeamHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	h.ListTeams(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.TeamListResponse](t, rec)
	if len(resp.Teams) != 1 {
		t.Fatalf("teams = %d, want 1", len(resp.Teams))
	}
}

func TestListTeams_Empty(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().ListTeams(mock.Anything).Return([]*team.Team{}, nil)

	h := handlers.NewTeamHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	h.ListTeams(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.TeamListResponse](t, rec)
	if resp.Teams == nil {
		t.Error("teams should be an empty array, not null")
	}
}

// --- AddMember ---

func TestAddMember_Success(t *testing.T) {
	t.Parallel()

	tm := buildTeam(t)

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().
		AddMember(mock.Anything, tm.ID().String(), ports.AddMemberInput{
			Name:  "Sam Doe",
			Email: "sam@example.com",
			Role:  "developer",
		}).
		Return(tm, nil)

	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{
		"name":  "Sam Doe",
		"email": "sam@example.com",
		"role":  "developer",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/"+tm.ID().String()+"/members", body)
	req = withChiParams(req, map[string]string{"id": tm.ID().String()})
	h.AddMember(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestAddMember_MissingEmail(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{"name": "Sam Doe", "role": "developer"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/abc/members", body)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.AddMember(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestAddMember_SecondScrumMaster(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().
		AddMember(mock.Anything, "abc", mock.Anything).
		Return(nil, domain.Conflictf("team already has a scrum master"))

	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{
		"name":  "Sam Doe",
		"email": "sam@example.com",
		"role":  "scrum_master",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/abc/members", body)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.AddMember(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- RemoveMember ---

func TestRemoveMember_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().RemoveMember(mock.Anything, "team-1", "member-1").Return(nil)

	h := handlers.NewTeamHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/teams/team-1/members/member-1", nil)
	req = withChiParams(req, map[string]string{"id": "team-1", "memberId": "member-1"})
	h.RemoveMember(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

// --- UpdateVelocity ---

func TestUpdateVelocity_Success(t *testing.T) {
	t.Parallel()

	tm := buildTeam(t)

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().UpdateVelocity(mock.Anything, tm.ID().String(), 21).Return(tm, nil)

	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{"velocity": 21})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/teams/"+tm.ID().String()+"/velocity", body)
	req = withChiParams(req, map[string]string{"id": tm.ID().String()})
	h.UpdateVelocity(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestUpdateVelocity_Negative(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().
		UpdateVelocity(mock.Anything, "abc", -3).
		Return(nil, domain.Validationf("velocity must not be negative"))

	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{"velocity": -3})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/teams/abc/velocity", body)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.UpdateVelocity(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Deactivate / Reactivate ---

func TestDeactivateTeam_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().DeactivateTeam(mock.Anything, "team-1", "restructuring").Return(nil)

	h := handlers.NewTeamHandler(svc)

	body := jsonBody(t, map[string]any{"reason": "restructuring"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/team-1/deactivate", body)
	req = withChiParams(req, map[string]string{"id": "team-1"})
	h.DeactivateTeam(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestReactivateTeam_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTeamService(t)
	svc.EXPECT().ReactivateTeam(mock.Anything, "team-1").Return(nil)

	h := handlers.NewTeamHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/team-1/reactivate", nil)
	req = withChiParams(req, map[string]string{"id": "team-1"})
	h.ReactivateTeam(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}
