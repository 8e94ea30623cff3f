package backlog

import (
	"time"

	"github.com/sprintdeck/scrumcore/internal/domain"
)

// Item is a unit of product work owned by a ProductBacklog. The owning
// backlog assigns its priority; everything else is mutated through the item's
// own methods, which enforce the item lifecycle.
type Item struct {
	id          ItemID
	backlogID   ID
	title       Title
	description Description
	itemType    ItemType
	priority    Priority
	storyPoints *StoryPoints
	status      Status
	acceptance  AcceptanceCriteria
	createdBy   string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewItem creates an item in status New with no priority assigned yet. The
// priority is set by the backlog when the item is added.
func NewItem(id ItemID, backlogID ID, title Title, description Description, itemType ItemType, createdBy string) (*Item, error) {
	if id.IsZero() {
		return nil, domain.Validationf("item id must not be zero")
	}
	if backlogID.IsZero() {
		return nil, domain.Validationf("item backlog id must not be zero")
	}
	if !itemType.IsValid() {
		return nil, domain.Validationf("item type %q is not valid", itemType)
	}
	now := time.Now().UTC()
	return &Item{
		id:          id,
		backlogID:   backlogID,
		title:       title,
		description: description,
		itemType:    itemType,
		status:      StatusNew,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RehydrateItem reconstructs an item from persisted state. Intended for
// repository use only.
func RehydrateItem(
	id ItemID, backlogID ID, title Title, description Description, itemType ItemType,
	priority Priority, storyPoints *StoryPoints, status Status, acceptance AcceptanceCriteria,
	createdBy string, createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		backlogID:   backlogID,
		title:       title,
		description: description,
		itemType:    itemType,
		priority:    priority,
		storyPoints: storyPoints,
		status:      status,
		acceptance:  acceptance,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() ItemID               { return i.id }
func (i *Item) BacklogID() ID            { return i.backlogID }
func (i *Item) Title() Title             { return i.title }
func (i *Item) Description() Description { return i.description }
func (i *Item) Type() ItemType           { return i.itemType }
func (i *Item) Priority() Priority       { return i.priority }
func (i *Item) Status() Status           { return i.status }
func (i *Item) CreatedBy() string        { return i.createdBy }
func (i *Item) CreatedAt() time.Time     { return i.createdAt }
func (i *Item) UpdatedAt() time.Time     { return i.updatedAt }

// StoryPoints returns the estimate, or nil if the item is unestimated.
func (i *Item) StoryPoints() *StoryPoints {
	if i.storyPoints == nil {
		return nil
	}
	p := *i.storyPoints
	return &p
}

// AcceptanceCriteria returns the item's acceptance criteria; the zero value
// means none have been written.
func (i *Item) AcceptanceCriteria() AcceptanceCriteria { return i.acceptance }

// setPriority is called by the owning backlog only. Items never assign their
// own priority.
func (i *Item) setPriority(p Priority) {
	i.priority = p
	i.touch()
}

// EstimateStoryPoints sets the item's estimate. Estimating a New item
// promotes it to Ready.
func (i *Item) EstimateStoryPoints(points StoryPoints) {
	i.storyPoints = &points
	if i.status == StatusNew {
		i.status = StatusReady
	}
	i.touch()
}

// SetAcceptanceCriteria replaces the acceptance criteria. The empty value is
// allowed and clears them.
func (i *Item) SetAcceptanceCriteria(criteria AcceptanceCriteria) {
	i.acceptance = criteria
	i.touch()
}

// UpdateTitle replaces the title. Content cannot change once the item is
// Done.
func (i *Item) UpdateTitle(title Title) error {
	if i.status == StatusDone {
		return domain.Statef("cannot modify a done item")
	}
	i.title = title
	i.touch()
	return nil
}

// UpdateDescription replaces the description. Content cannot change once the
// item is Done.
func (i *Item) UpdateDescription(description Description) error {
	if i.status == StatusDone {
		return domain.Statef("cannot modify a done item")
	}
	i.description = description
	i.touch()
	return nil
}

// MarkAsInProgress moves a Ready item into InProgress.
func (i *Item) MarkAsInProgress() error {
	if i.status != StatusReady {
		return domain.Statef("only ready items can be started, item is %s", i.status)
	}
	i.status = StatusInProgress
	i.touch()
	return nil
}

// MarkAsDone moves an InProgress item to Done.
func (i *Item) MarkAsDone() error {
	if i.status != StatusInProgress {
		return domain.Statef("only in-progress items can be completed, item is %s", i.status)
	}
	i.status = StatusDone
	i.touch()
	return nil
}

// ResetToReady returns an InProgress item to Ready. The estimate must still
// be present; Done items cannot be reset.
func (i *Item) ResetToReady() error {
	if i.status == StatusDone {
		return domain.Statef("a done item cannot be reset")
	}
	if i.storyPoints == nil {
		return domain.Statef("an unestimated item cannot be reset to ready")
	}
	i.status = StatusReady
	i.touch()
	return nil
}

// IsReadyForSprint reports whether the item can be pulled into a sprint:
// status Ready, estimate present, acceptance criteria written.
func (i *Item) IsReadyForSprint() bool {
	return i.status == StatusReady && i.storyPoints != nil && i.acceptance.IsSet()
}

func (i *Item) touch() {
	i.updatedAt = time.Now().UTC()
}
