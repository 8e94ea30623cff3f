package backlog

// Status is a backlog item's lifecycle state. The legal transitions are
// New -> Ready (by estimating), Ready -> InProgress, InProgress -> Done, and
// InProgress -> Ready (reset, as long as the estimate is kept). Done is
// terminal for content edits.
type Status string

const (
	StatusNew        Status = "new"
	StatusReady      Status = "ready"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusReady, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
