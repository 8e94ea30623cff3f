package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sprintdeck/scrumcore/internal/adapters/http/dto"
	"github.com/sprintdeck/scrumcore/internal/adapters/http/handlers"
	"github.com/sprintdeck/scrumcore/internal/domain"
	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
	"github.com/sprintdeck/scrumcore/internal/ports"
	"github.com/sprintdeck/scrumcore/mocks"
)

func buildBacklog(t *testing.T) *backlog.ProductBacklog {
	t.Helper()

	b, err := backlog.Create(backlog.NewID(), team.NewID(), "initial scope")
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func addBacklogItem(t *testing.T, b *backlog.ProductBacklog, title string) *backlog.Item {
	t.Helper()

	tl, err := backlog.NewTitle(title)
	if err != nil {
		t.Fatal(err)
	}
	desc, err := backlog.NewDescription("as a user I want " + title)
	if err != nil {
		t.Fatal(err)
	}
	typ, err := backlog.NewItemType("user_story")
	if err != nil {
		t.Fatal(err)
	}
	item, err := backlog.NewItem(backlog.NewItemID(), b.ID(), tl, desc, typ, "po@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddItem(item); err != nil {
		t.Fatal(err)
	}
	return item
}

// --- CreateBacklog ---

func TestCreateBacklog_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		CreateBacklog(mock.Anything, b.TeamID().String(), "initial scope").
		Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"team_id": b.TeamID().String(), "notes": "initial scope"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs", body)
	h.CreateBacklog(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.BacklogResponse](t, rec)
	if resp.ID != b.ID().String() {
		t.Errorf("id = %q, want %q", resp.ID, b.ID().String())
	}
	if resp.Items == nil {
		t.Error("items should be an empty array, not null")
	}
}

func TestCreateBacklog_MissingTeamID(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"notes": "whatever"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs", body)
	h.CreateBacklog(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateBacklog_TeamAlreadyHasOne(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		CreateBacklog(mock.Anything, "team-1", "").
		Return(nil, domain.Conflictf("team %s already has a backlog", "team-1"))

	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"team_id": "team-1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs", body)
	h.CreateBacklog(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- GetBacklog / GetTeamBacklog ---

func TestGetBacklog_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)
	addBacklogItem(t, b, "checkout flow")

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().GetBacklog(mock.Anything, b.ID().String()).Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/backlogs/"+b.ID().String(), nil)
	req = withChiParams(req, map[string]string{"id": b.ID().String()})
	h.GetBacklog(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.BacklogResponse](t, rec)
	if len(resp.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(resp.Items))
	}
	if resp.Items[0].Status != "new" {
		t.Errorf("item status = %q, want %q", resp.Items[0].Status, "new")
	}
	if resp.Items[0].ReadyForSprint {
		t.Error("unestimated item must not be ready for sprint")
	}
}

func TestGetBacklog_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		GetBacklog(mock.Anything, "missing").
		Return(nil, domain.NotFoundf("backlog %s not found", "missing"))

	h := handlers.NewBacklogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/backlogs/missing", nil)
	req = withChiParams(req, map[string]string{"id": "missing"})
	h.GetBacklog(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetTeamBacklog_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().GetTeamBacklog(mock.Anything, b.TeamID().String()).Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/"+b.TeamID().String()+"/backlog", nil)
	req = withChiParams(req, map[string]string{"teamId": b.TeamID().String()})
	h.GetTeamBacklog(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

// --- AddItem ---

func TestAddBacklogItem_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)
	addBacklogItem(t, b, "checkout flow")

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		AddItem(mock.Anything, b.ID().String(), ports.AddBacklogItemInput{
			Title:       "checkout flow",
			Description: "one-click checkout",
			Type:        "user_story",
			CreatedBy:   "po@example.com",
		}).
		Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{
		"title":       "checkout flow",
		"description": "one-click checkout",
		"type":        "user_story",
		"created_by":  "po@example.com",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/"+b.ID().String()+"/items", body)
	req = withChiParams(req, map[string]string{"id": b.ID().String()})
	h.AddItem(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestAddBacklogItem_MissingTitle(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"type": "bug", "created_by": "po@example.com"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/abc/items", body)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.AddItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- RemoveItem ---

func TestRemoveBacklogItem_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().RemoveItem(mock.Anything, "backlog-1", "item-1").Return(nil)

	h := handlers.NewBacklogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/backlogs/backlog-1/items/item-1", nil)
	req = withChiParams(req, map[string]string{"id": "backlog-1", "itemId": "item-1"})
	h.RemoveItem(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestRemoveBacklogItem_InProgress(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		RemoveItem(mock.Anything, "backlog-1", "item-1").
		Return(domain.Statef("in-progress items cannot be removed"))

	h := handlers.NewBacklogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/backlogs/backlog-1/items/item-1", nil)
	req = withChiParams(req, map[string]string{"id": "backlog-1", "itemId": "item-1"})
	h.RemoveItem(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

// --- ReorderItems ---

func TestReorderItems_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)
	item := addBacklogItem(t, b, "checkout flow")

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		ReorderItems(mock.Anything, b.ID().String(), []ports.ItemPriority{
			{ItemID: item.ID().String(), Priority: 3},
		}).
		Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{
		"items": []map[string]any{{"item_id": item.ID().String(), "priority": 3}},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/"+b.ID().String()+"/reorder", body)
	req = withChiParams(req, map[string]string{"id": b.ID().String()})
	h.ReorderItems(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestReorderItems_EmptyList(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"items": []map[string]any{}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/abc/reorder", body)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.ReorderItems(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Refine ---

func TestRefine_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		MarkAsRefined(mock.Anything, b.ID().String(), "split the epic").
		Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"notes": "split the epic"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/"+b.ID().String()+"/refine", body)
	req = withChiParams(req, map[string]string{"id": b.ID().String()})
	h.Refine(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

// --- EstimateItem ---

func TestEstimateItem_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		EstimateItem(mock.Anything, b.ID().String(), "item-1", 5).
		Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"story_points": 5})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/"+b.ID().String()+"/items/item-1/estimate", body)
	req = withChiParams(req, map[string]string{"id": b.ID().String(), "itemId": "item-1"})
	h.EstimateItem(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestEstimateItem_NotFibonacci(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		EstimateItem(mock.Anything, "backlog-1", "item-1", 4).
		Return(nil, domain.Validationf("story points must be a fibonacci value"))

	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{"story_points": 4})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/backlog-1/items/item-1/estimate", body)
	req = withChiParams(req, map[string]string{"id": "backlog-1", "itemId": "item-1"})
	h.EstimateItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Item lifecycle ---

func TestStartItem_Success(t *testing.T) {
	t.Parallel()

	b := buildBacklog(t)

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().StartItem(mock.Anything, b.ID().String(), "item-1").Return(b, nil)

	h := handlers.NewBacklogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/"+b.ID().String()+"/items/item-1/start", nil)
	req = withChiParams(req, map[string]string{"id": b.ID().String(), "itemId": "item-1"})
	h.StartItem(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestStartItem_NotReady(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	svc.EXPECT().
		StartItem(mock.Anything, "backlog-1", "item-1").
		Return(nil, domain.Statef("item cannot move from %s to %s", "new", "in_progress"))

	h := handlers.NewBacklogHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/backlogs/backlog-1/items/item-1/start", nil)
	req = withChiParams(req, map[string]string{"id": "backlog-1", "itemId": "item-1"})
	h.StartItem(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}

// --- UpdateItem ---

func TestUpdateBacklogItem_NoFields(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBacklogService(t)
	h := handlers.NewBacklogHandler(svc)

	body := jsonBody(t, map[string]any{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/backlogs/abc/items/item-1", body)
	req = withChiParams(req, map[string]string{"id": "abc", "itemId": "item-1"})
	h.UpdateItem(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
