package sprint_test

import (
	"testing"
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain/backlog"
	"github.com/sprintdeck/scrumcore/internal/domain/sprint"
	"github.com/sprintdeck/scrumcore/internal/domain/team"
)

// TestFullSprintCycle walks one iteration end to end: a team is formed, a
// backlog item is refined to readiness, committed to a sprint, executed
// through its task, and the sprint is completed with the item's points
// counted.
func TestFullSprintCycle(t *testing.T) {
	t.Parallel()

	// Team "Phoenix" with a two-week cadence and a Product Owner.
	teamName, err := team.NewName("Phoenix")
	if err != nil {
		t.Fatalf("NewName() error = %v", err)
	}
	length, err := team.NewSprintLength(2)
	if err != nil {
		t.Fatalf("NewSprintLength() error = %v", err)
	}
	phoenix, err := team.Create(team.NewID(), teamName, "", length)
	if err != nil {
		t.Fatalf("team.Create() error = %v", err)
	}

	annName, _ := team.NewMemberName("Ann")
	annEmail, err := team.NewEmail("ann@example.com")
	if err != nil {
		t.Fatalf("NewEmail() error = %v", err)
	}
	ann, err := team.NewMember(team.NewMemberID(), phoenix.ID(), annName, annEmail, team.RoleProductOwner)
	if err != nil {
		t.Fatalf("NewMember() error = %v", err)
	}
	if err := phoenix.AddMember(ann); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}

	// Backlog with one refined item.
	pb, err := backlog.Create(backlog.NewID(), phoenix.ID(), "")
	if err != nil {
		t.Fatalf("backlog.Create() error = %v", err)
	}
	title, _ := backlog.NewTitle("Login flow")
	item, err := backlog.NewItem(backlog.NewItemID(), pb.ID(), title, "", backlog.TypeUserStory, "ann@example.com")
	if err != nil {
		t.Fatalf("backlog.NewItem() error = %v", err)
	}
	if err := pb.AddItem(item); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	five, _ := backlog.NewStoryPoints(5)
	item.EstimateStoryPoints(five)
	criteria, _ := backlog.NewAcceptanceCriteria("Given a registered user, login succeeds with valid credentials")
	item.SetAcceptanceCriteria(criteria)
	if !item.IsReadyForSprint() {
		t.Fatal("refined item should be ready for sprint")
	}

	// Sprint planning: commit the item with a sprint-scoped estimate.
	goal, err := sprint.NewGoal("Ship login")
	if err != nil {
		t.Fatalf("NewGoal() error = %v", err)
	}
	capacity, _ := sprint.NewCapacity(80)
	startDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sp, err := sprint.Create(sprint.NewID(), phoenix.ID(), goal, startDate, startDate.AddDate(0, 0, 14), capacity)
	if err != nil {
		t.Fatalf("sprint.Create() error = %v", err)
	}

	points, _ := sprint.NewStoryPoints(5)
	estimate, _ := sprint.NewHours(8)
	committed, err := sprint.NewItem(sprint.NewItemID(), sp.ID(), item.ID(), points, estimate)
	if err != nil {
		t.Fatalf("sprint.NewItem() error = %v", err)
	}
	if err := sp.AddItem(committed); err != nil {
		t.Fatalf("sprint.AddItem() error = %v", err)
	}
	if err := sp.Start(); err != nil {
		t.Fatalf("sprint.Start() error = %v", err)
	}

	// Execution: one task, worked down to zero hours.
	taskTitle, _ := sprint.NewTaskTitle("Implement form")
	taskEstimate, _ := sprint.NewEstimateHours(4)
	task, err := sprint.NewTask(sprint.NewTaskID(), committed.ID(), taskTitle, "", taskEstimate)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if err := committed.AddTask(task); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if err := committed.StartTask(task.ID()); err != nil {
		t.Fatalf("StartTask() error = %v", err)
	}
	if err := committed.UpdateTaskRemainingHours(task.ID(), 0); err != nil {
		t.Fatalf("UpdateTaskRemainingHours(0) error = %v", err)
	}

	if task.Status() != sprint.TaskDone {
		t.Errorf("task status = %s, want done", task.Status())
	}
	if !committed.IsCompleted() {
		t.Fatal("sprint item should complete once all tasks are done")
	}

	// Close out.
	velocity, err := sprint.NewActualVelocity(5)
	if err != nil {
		t.Fatalf("NewActualVelocity() error = %v", err)
	}
	if err := sp.Complete(velocity); err != nil {
		t.Fatalf("sprint.Complete() error = %v", err)
	}
	if got := sp.CompletedStoryPoints(); got != 5 {
		t.Errorf("CompletedStoryPoints() = %d, want 5", got)
	}
	if sp.ActualVelocity() == nil || sp.ActualVelocity().Points() != 5 {
		t.Error("ActualVelocity() should be 5 after completion")
	}
}
