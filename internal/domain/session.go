package domain

// Step is the wizard's position in the fixed step sequence.
type Step int

const (
	StepWeek Step = iota
	StepStatus
	StepTime
	StepGame
	StepDone
)

// Page locates the wizard inside a step: which page of a paginated step
// is currently shown. Index is zero-based.
type Page struct {
	Step  Step
	Index int
}

// WizardSession is one user's in-progress plan. Exactly one live instance
// exists per user; restarting the wizard replaces it wholesale.
type WizardSession struct {
	UserID int64
	ChatID int64

	// Week is the chosen "DD.MM.YYYY - DD.MM.YYYY" label. Validated once
	// against the current options when chosen, never revalidated.
	Week string

	// DayStatus holds explicit choices only; missing days are NoStream.
	DayStatus map[Weekday]DayStatus

	// DayTime and DayGame may carry stale entries for days later reset to
	// NoStream. The renderer ignores them for NoStream days.
	DayTime map[Weekday]string
	DayGame map[Weekday]string

	Current Page
}

// NewWizardSession returns a fresh session positioned at week selection.
func NewWizardSession(userID, chatID int64) *WizardSession {
	return &WizardSession{
		UserID:    userID,
		ChatID:    chatID,
		DayStatus: make(map[Weekday]DayStatus),
		DayTime:   make(map[Weekday]string),
		DayGame:   make(map[Weekday]string),
		Current:   Page{Step: StepWeek},
	}
}

// Status returns the day's status, defaulting to NoStream when unset.
func (s *WizardSession) Status(d Weekday) DayStatus {
	if st, ok := s.DayStatus[d]; ok {
		return st
	}
	return NoStream
}

// ActiveDays returns, in fixed day order, the days whose status is not
// NoStream. Always recomputed from the current status map so that a status
// changed after visiting a later step is reflected on the next visit.
func (s *WizardSession) ActiveDays() []Weekday {
	var days []Weekday
	for _, d := range Days {
		if s.Status(d) != NoStream {
			days = append(days, d)
		}
	}
	return days
}
