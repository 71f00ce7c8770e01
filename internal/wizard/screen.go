package wizard

import "streamplan/internal/domain"

// ScreenKind identifies what the next screen asks the user for.
type ScreenKind int

const (
	ScreenWeek ScreenKind = iota
	ScreenStatus
	ScreenTimeForm
	ScreenGameForm
	ScreenDone
)

// Screen describes the next screen to show, decoupled from any UI widget
// library. The handler layer turns it into inline keyboards and prompts.
type Screen struct {
	Kind ScreenKind

	// WeekChoices is set for ScreenWeek only.
	WeekChoices []string

	// Days are the days shown on this page, in fixed day order.
	Days []domain.Weekday

	// Statuses and Times carry the current answers for Days, so the UI
	// layer can label widgets without reaching into the session.
	Statuses map[domain.Weekday]domain.DayStatus
	Times    map[domain.Weekday]string

	// Page and PageCount are 1-based and set for paginated screens.
	Page      int
	PageCount int

	HasBack    bool
	HasNext    bool
	HasProceed bool
}
