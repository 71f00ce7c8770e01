package wizard

import (
	"fmt"
	"strings"
	"time"

	"streamplan/internal/domain"
)

// DaysPerPage is the platform's per-screen item limit for paginated steps.
const DaysPerPage = 3

// Wizard drives a WizardSession through the step sequence: week selection,
// per-day status pages, per-day time pages, game form, completion. It owns
// no state itself; everything lives in the session.
type Wizard struct {
	now func() time.Time
}

// New creates a wizard on the real clock.
func New() *Wizard {
	return &Wizard{now: time.Now}
}

// NewWithClock creates a wizard with an injected clock for tests.
func NewWithClock(now func() time.Time) *Wizard {
	return &Wizard{now: now}
}

// statusPages splits the 7 fixed days into status pages.
func statusPages() [][]domain.Weekday {
	return chunkDays(domain.Days[:])
}

// timePages splits the days that need a time entry into pages. Recomputed
// from the current status map on every call, never cached, so a status
// changed after visiting this step is reflected on the next visit.
func timePages(s *domain.WizardSession) [][]domain.Weekday {
	return chunkDays(s.ActiveDays())
}

func chunkDays(days []domain.Weekday) [][]domain.Weekday {
	var pages [][]domain.Weekday
	for start := 0; start < len(days); start += DaysPerPage {
		end := start + DaysPerPage
		if end > len(days) {
			end = len(days)
		}
		pages = append(pages, days[start:end])
	}
	return pages
}

func clamp(idx, count int) int {
	if idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}

// NextScreen reconstructs the screen for the session's current position.
// Pure with respect to the session.
func (w *Wizard) NextScreen(s *domain.WizardSession) Screen {
	switch s.Current.Step {
	case domain.StepWeek:
		return Screen{Kind: ScreenWeek, WeekChoices: domain.WeekOptions(w.now())}

	case domain.StepStatus:
		pages := statusPages()
		idx := clamp(s.Current.Index, len(pages))
		return Screen{
			Kind:       ScreenStatus,
			Days:       pages[idx],
			Statuses:   statusesFor(s, pages[idx]),
			Page:       idx + 1,
			PageCount:  len(pages),
			HasBack:    idx > 0,
			HasNext:    idx < len(pages)-1,
			HasProceed: idx == len(pages)-1,
		}

	case domain.StepTime:
		pages := timePages(s)
		if len(pages) == 0 {
			// Every day is NoStream; the time step has nothing to ask.
			return w.gameScreen(s)
		}
		idx := clamp(s.Current.Index, len(pages))
		return Screen{
			Kind:      ScreenTimeForm,
			Days:      pages[idx],
			Statuses:  statusesFor(s, pages[idx]),
			Times:     timesFor(s, pages[idx]),
			Page:      idx + 1,
			PageCount: len(pages),
			HasBack:   true,
		}

	case domain.StepGame:
		return w.gameScreen(s)

	default:
		return Screen{Kind: ScreenDone}
	}
}

func (w *Wizard) gameScreen(s *domain.WizardSession) Screen {
	days := s.ActiveDays()
	return Screen{
		Kind:     ScreenGameForm,
		Days:     days,
		Statuses: statusesFor(s, days),
		Times:    timesFor(s, days),
		HasBack:  true,
	}
}

func statusesFor(s *domain.WizardSession, days []domain.Weekday) map[domain.Weekday]domain.DayStatus {
	m := make(map[domain.Weekday]domain.DayStatus, len(days))
	for _, d := range days {
		m[d] = s.Status(d)
	}
	return m
}

func timesFor(s *domain.WizardSession, days []domain.Weekday) map[domain.Weekday]string {
	m := make(map[domain.Weekday]string, len(days))
	for _, d := range days {
		if t, ok := s.DayTime[d]; ok {
			m[d] = t
		}
	}
	return m
}

// ChooseWeek records the chosen week label and moves to the first status
// page. The label must be one of the currently valid options; choosing a
// week resets all day answers.
func (w *Wizard) ChooseWeek(s *domain.WizardSession, label string) error {
	if s.Current.Step != domain.StepWeek {
		return fmt.Errorf("week already chosen")
	}

	valid := false
	for _, option := range domain.WeekOptions(w.now()) {
		if option == label {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown week option %q", label)
	}

	s.Week = label
	s.DayStatus = make(map[domain.Weekday]domain.DayStatus)
	s.DayTime = make(map[domain.Weekday]string)
	s.DayGame = make(map[domain.Weekday]string)
	s.Current = domain.Page{Step: domain.StepStatus}
	return nil
}

// SetDayStatus overwrites one day's status during the status step.
func (w *Wizard) SetDayStatus(s *domain.WizardSession, day domain.Weekday, status domain.DayStatus) error {
	if s.Current.Step != domain.StepStatus {
		return fmt.Errorf("not selecting day statuses")
	}
	if !day.Valid() {
		return fmt.Errorf("unknown day %d", day)
	}
	if !status.Valid() {
		return fmt.Errorf("unknown status %d", status)
	}
	s.DayStatus[day] = status
	return nil
}

// Next moves forward one page within the status step.
func (w *Wizard) Next(s *domain.WizardSession) error {
	if s.Current.Step != domain.StepStatus {
		return fmt.Errorf("no next page here")
	}
	if s.Current.Index >= len(statusPages())-1 {
		return fmt.Errorf("already on the last page")
	}
	s.Current.Index++
	return nil
}

// Back moves one page backward, crossing step boundaries where the
// previous step has pages. Moving backward never clears any answers.
func (w *Wizard) Back(s *domain.WizardSession) error {
	switch s.Current.Step {
	case domain.StepStatus:
		if s.Current.Index == 0 {
			return fmt.Errorf("already on the first page")
		}
		s.Current.Index--
		return nil

	case domain.StepTime:
		if s.Current.Index > 0 {
			s.Current.Index--
			return nil
		}
		s.Current = domain.Page{Step: domain.StepStatus, Index: len(statusPages()) - 1}
		return nil

	case domain.StepGame:
		if pages := timePages(s); len(pages) > 0 {
			s.Current = domain.Page{Step: domain.StepTime, Index: len(pages) - 1}
		} else {
			s.Current = domain.Page{Step: domain.StepStatus, Index: len(statusPages()) - 1}
		}
		return nil

	default:
		return fmt.Errorf("cannot go back here")
	}
}

// Proceed leaves the status step. Days needing a time entry are recomputed
// from the current statuses; when there are none the time step is skipped
// entirely.
func (w *Wizard) Proceed(s *domain.WizardSession) error {
	if s.Current.Step != domain.StepStatus {
		return fmt.Errorf("not on the status step")
	}
	if len(timePages(s)) == 0 {
		s.Current = domain.Page{Step: domain.StepGame}
		return nil
	}
	s.Current = domain.Page{Step: domain.StepTime}
	return nil
}

// SubmitTimes writes the time entries for the current time page. The page
// is atomic: every field must be a valid HH:MM time or the whole submission
// is rejected with the offending days listed and nothing written.
func (w *Wizard) SubmitTimes(s *domain.WizardSession, values map[domain.Weekday]string) error {
	if s.Current.Step != domain.StepTime {
		return fmt.Errorf("not entering times")
	}

	pages := timePages(s)
	if len(pages) == 0 {
		return fmt.Errorf("no days need a time entry")
	}
	idx := clamp(s.Current.Index, len(pages))
	days := pages[idx]

	var invalid []domain.FieldError
	cleaned := make(map[domain.Weekday]string, len(days))
	for _, day := range days {
		v := strings.TrimSpace(values[day])
		if !domain.IsValidTime(v) {
			invalid = append(invalid, domain.FieldError{Day: day, Value: v})
			continue
		}
		cleaned[day] = v
	}
	if len(invalid) > 0 {
		return &domain.ValidationError{Fields: invalid}
	}

	for day, v := range cleaned {
		s.DayTime[day] = v
	}

	if idx+1 < len(pages) {
		s.Current.Index = idx + 1
	} else {
		s.Current = domain.Page{Step: domain.StepGame}
	}
	return nil
}

// SubmitGames writes the game entries for all days that stream. Fields are
// optional free text; an empty field becomes the "?" placeholder. Moves the
// wizard to completion.
func (w *Wizard) SubmitGames(s *domain.WizardSession, values map[domain.Weekday]string) error {
	if s.Current.Step != domain.StepGame {
		return fmt.Errorf("not entering games")
	}

	for _, day := range s.ActiveDays() {
		v := strings.TrimSpace(values[day])
		if v == "" {
			v = "?"
		}
		s.DayGame[day] = v
	}
	s.Current = domain.Page{Step: domain.StepDone}
	return nil
}
