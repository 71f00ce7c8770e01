package domain

// Weekday is one of the 7 fixed plan days, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Days is the closed, ordered set of plan days.
var Days = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = [7]string{
	"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag",
}

// String returns the German day name used in the posted plan.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "?"
	}
	return dayNames[d]
}

// Valid reports whether d is one of the 7 plan days.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// DayStatus is the per-day stream decision.
type DayStatus int

const (
	NoStream DayStatus = iota
	Maybe
	Scheduled
)

var statusNames = [3]string{"Kein Stream", "Eventuell", "Stream"}
var statusGlyphs = [3]string{"🟥", "🟨", "🟩"}

// String returns the German status text used in the posted plan.
func (s DayStatus) String() string {
	if !s.Valid() {
		return "?"
	}
	return statusNames[s]
}

// Glyph returns the status icon, one fixed icon per status.
func (s DayStatus) Glyph() string {
	if !s.Valid() {
		return "?"
	}
	return statusGlyphs[s]
}

// Valid reports whether s is one of the three known statuses.
func (s DayStatus) Valid() bool {
	return s >= NoStream && s <= Scheduled
}
