package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/sprintdeck/scrumcore/internal/adapters/http"
	"github.com/sprintdeck/scrumcore/internal/adapters/http/handlers"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/mocks"
)

type routerMocks struct {
	teams    *mocks.MockTeamService
	backlogs *mocks.MockBacklogService
	sprints  *mocks.MockSprintService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()

	m := routerMocks{
		teams:    mocks.NewMockTeamService(t),
		backlogs: mocks.NewMockBacklogService(t),
		sprints:  mocks.NewMockSprintService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}

	router := adapthttp.NewRouter(
		handlers.NewTeamHandler(m.teams),
		handlers.NewBacklogHandler(m.backlogs),
		handlers.NewSprintHandler(m.sprints),
		handlers.NewHealthHandler(m.registry),
	)
	return router, m
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/teams"},
		{http.MethodGet, "/api/v1/teams"},
		{http.MethodGet, "/api/v1/teams/{id}"},
		{http.MethodPatch, "/api/v1/teams/{id}"},
		{http.MethodPost, "/api/v1/teams/{id}/members"},
		{http.MethodDelete, "/api/v1/teams/{id}/members/{memberId}"},
		{http.MethodPut, "/api/v1/teams/{id}/velocity"},
		{http.MethodPost, "/api/v1/teams/{id}/deactivate"},
		{http.MethodPost, "/api/v1/teams/{id}/reactivate"},
		{http.MethodGet, "/api/v1/teams/{teamId}/backlog"},
		{http.MethodGet, "/api/v1/teams/{teamId}/sprints"},
		{http.MethodPost, "/api/v1/backlogs"},
		{http.MethodGet, "/api/v1/backlogs/{id}"},
		{http.MethodPost, "/api/v1/backlogs/{id}/items"},
		{http.MethodDelete, "/api/v1/backlogs/{id}/items/{itemId}"},
		{http.MethodPost, "/api/v1/backlogs/{id}/reorder"},
		{http.MethodPost, "/api/v1/backlogs/{id}/refine"},
		{http.MethodPatch, "/api/v1/backlogs/{id}/items/{itemId}"},
		{http.MethodPost, "/api/v1/backlogs/{id}/items/{itemId}/estimate"},
		{http.MethodPut, "/api/v1/backlogs/{id}/items/{itemId}/acceptance-criteria"},
		{http.MethodPost, "/api/v1/backlogs/{id}/items/{itemId}/start"},
		{http.MethodPost, "/api/v1/backlogs/{id}/items/{itemId}/complete"},
		{http.MethodPost, "/api/v1/backlogs/{id}/items/{itemId}/reset"},
		{http.MethodPost, "/api/v1/sprints"},
		{http.MethodGet, "/api/v1/sprints/{id}"},
		{http.MethodPatch, "/api/v1/sprints/{id}/goal"},
		{http.MethodPost, "/api/v1/sprints/{id}/start"},
		{http.MethodPost, "/api/v1/sprints/{id}/review"},
		{http.MethodPost, "/api/v1/sprints/{id}/retrospective"},
		{http.MethodPost, "/api/v1/sprints/{id}/complete"},
		{http.MethodPost, "/api/v1/sprints/{id}/cancel"},
		{http.MethodGet, "/api/v1/sprints/{id}/progress"},
		{http.MethodPost, "/api/v1/sprints/{id}/items"},
		{http.MethodDelete, "/api/v1/sprints/{id}/items/{itemId}"},
		{http.MethodPut, "/api/v1/sprints/{id}/items/{itemId}/remaining"},
		{http.MethodPost, "/api/v1/sprints/{id}/items/{itemId}/tasks"},
		{http.MethodDelete, "/api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}"},
		{http.MethodPost, "/api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/start"},
		{http.MethodPost, "/api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/complete"},
		{http.MethodPost, "/api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/block"},
		{http.MethodPost, "/api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/unblock"},
		{http.MethodPut, "/api/v1/sprints/{id}/items/{itemId}/tasks/{taskId}/remaining"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	teams := mocks.NewMockTeamService(t)
	backlogs := mocks.NewMockBacklogService(t)
	sprints := mocks.NewMockSprintService(t)
	registry := mocks.NewMockHealthRegistry(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(
		handlers.NewTeamHandler(teams),
		handlers.NewBacklogHandler(backlogs),
		handlers.NewSprintHandler(sprints),
		handlers.NewHealthHandler(registry),
		testMW,
	)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListTeams(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)

	m.teams.EXPECT().ListTeams(mock.Anything).Return([]*team.Team{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/teams", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
