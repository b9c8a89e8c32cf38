package requests

// GetSchedule asks for the raw schedule envelope of one group.
type GetSchedule struct {
	Group   string `validate:"required,min=3,max=32"`
	Session string `validate:"omitempty,numeric"`
}

// GetLessons asks for the normalized, filtered lesson sequence.
type GetLessons struct {
	Group    string   `validate:"required,min=3,max=32"`
	Session  string   `validate:"omitempty,numeric"`
	Date     string   `validate:"omitempty,datetime=2006-01-02"`
	Types    []string `validate:"-"`
	Format   string   `validate:"omitempty,oneof=all online offline"`
	AllDates bool     `validate:"-"`
}

// GetSlotStatus resolves the slot clock, optionally at an explicit
// wall-clock time instead of "now".
type GetSlotStatus struct {
	At string `validate:"omitempty,datetime=15:04"`
}
