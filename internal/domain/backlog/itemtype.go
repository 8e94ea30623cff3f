package backlog

import "github.com/sprintdeck/scrumcore/internal/domain"

// ItemType categorizes a backlog item by the kind of work it represents.
type ItemType string

const (
	TypeUserStory     ItemType = "user_story"
	TypeTechnicalTask ItemType = "technical_task"
	TypeBug           ItemType = "bug"
	TypeSpike         ItemType = "spike"
	TypeEpic          ItemType = "epic"
)

// NewItemType validates and creates an item type from its string form.
func NewItemType(s string) (ItemType, error) {
	it := ItemType(s)
	if !it.IsValid() {
		return "", domain.Validationf("item type must be one of: user_story, technical_task, bug, spike, epic; got %q", s)
	}
	return it, nil
}

// IsValid returns true if the type is one of the defined constants.
func (it ItemType) IsValid() bool {
	switch it {
	case TypeUserStory, TypeTechnicalTask, TypeBug, TypeSpike, TypeEpic:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (it ItemType) String() string {
	return string(it)
}
