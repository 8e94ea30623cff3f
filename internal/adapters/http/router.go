// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sprintdeck/scrumcore/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	teamHandler *handlers.TeamHandler,
	backlogHandler *handlers.BacklogHandler,
	sprintHandler *handlers.SprintHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Teams and their members.
		r.Post("/teams", teamHandler.CreateTeam)
		r.Get("/teams", teamHandler.ListTeams)
		r.Get("/teams/{id}", teamHandler.GetTeam)
		r.Patch("/teams/{id}", teamHandler.UpdateTeam)
		r.Post("/teams/{id}/members", teamHandler.AddMember)
		r.Delete("/teams/{id}/members/{memberId}", teamHandler.RemoveMember)
		r.Put("/teams/{id}/velocity", teamHandler.UpdateVelocity)
		r.Post("/teams/{id}/deactivate", teamHandler.DeactivateTeam)
		r.Post("/teams/{id}/reactivate", teamHandler.ReactivateTeam)

		// Team-scoped reads of owned aggregates.
		r.Get("/teams/{teamId}/backlog", backlogHandler.GetTeamBacklog)
		r.Get("/teams/{teamId}/sprints", sprintHandler.ListTeamSprints)

		// Product backlogs and their items.
		r.Post("/backlogs", backlogHandler.CreateBacklog)
		r.Get("/backlogs/{id}", backlogHandler.GetBacklog)
		r.Post("/backlogs/{id}/items", backlogHandler.AddItem)
		r.Delete("/backlogs/{id}/items/{itemId}", backlogHandler.RemoveItem)
		r.Post("/backlogs/{id}/reorder", backlogHandler.ReorderItems)
		r.Post("/backlogs/{id}/refine", backlogHandler.Refine)
		r.Patch("/backlogs/{id}/items/{itemId}", backlogHandler.UpdateItem)
		r.Post("/backlogs/{id}/items/{itemId}/estimate", backlogHandler.EstimateItem)
		r.Put("/backlogs/{id}/items/{itemId}/acceptance-criteria", backlogHandler.SetAcceptanceCriteria)
		r.Post("/backlogs/{id}/items/{itemId}/start", backlogHandler.StartItem)
		r.Post("/backlogs/{id}/items/{itemId}/complete", backlogHandler.CompleteItem)
		r.Post("/backlogs/{id}/items/{itemId}/reset", backlogHandler.ResetItem)

		// Sprints, their committed items, and tasks.
		r.Post("/sprints", sprintHandler.CreateSprint)
		r.Get("/sprints/{id}", sprintHandler.GetSprint)
		r.Patch("/sprints/{id}/goal", sprintHandler.UpdateGoal)
		r.Post("/sprints/{id}/start", sprintHandler.StartSprint)
		r.Post("/sprints/{id}/review", sprintHandler.StartReview)
		r.Post("/sprints/{id}/retrospective", sprintHandler.StartRetrospective)
		r.Post("/sprints/{id}/complete", sprintHandler.CompleteSprint)
		r.Post("/sprints/{id}/cancel", sprintHandler.CancelSprint)
		r.Get("/sprints/{id}/progress", sprintHandler.Progress)
		r.Post("/sprints/{id}/items", sprintHandler.AddItem)
		r.Delete("/sprints/{id}/items/{itemId}", sprintHandler.RemoveItem)
		r.Put("/sprints/{id}/items/{itemId}/remaining", sprintHandler.UpdateItemRemaining)
		r.Post("/sprints/{id}/items/{itemId}/tasks", sprintHandler.AddTask)
		r.Delete("/sprints/{id}/items/{itemId}/tasks/{taskId}", sprintHandler.RemoveTask)
		r.Post("/sprints/{id}/items/{itemId}/tasks/{taskId}/start", sprintHandler.StartTask)
		r.Post("/sprints/{id}/items/{itemId}/tasks/{taskId}/complete", sprintHandler.CompleteTask)
		r.Post("/sprints/{id}/items/{itemId}/tasks/{taskId}/block", sprintHandler.BlockTask)
		r.Post("/sprints/{id}/items/{itemId}/tasks/{taskId}/unblock", sprintHandler.UnblockTask)
		r.Put("/sprints/{id}/items/{itemId}/tasks/{taskId}/remaining", sprintHandler.UpdateTaskRemaining)
	})

	return r
}
