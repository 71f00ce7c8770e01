package render

import (
	"fmt"
	"strings"

	"streamplan/internal/domain"
)

// Document is the finished announcement, ready for dispatch.
type Document struct {
	Title string
	Body  string
}

// Text returns the document as a single message text.
func (d Document) Text() string {
	return d.Title + "\n\n" + d.Body
}

const gameIcon = "🎮"

// gameEmoji pairs a lowercase game-name substring with its decorative icon.
// The first matching entry, in table order, is appended to the generic icon.
type gameEmoji struct {
	key  string
	icon string
}

var gameEmojis = []gameEmoji{
	{"fortnite", "🔫"}, {"call of duty", "🔫"}, {"cod", "🔫"}, {"minecraft", "⛏️"}, {"gta", "🚗"},
	{"fifa", "⚽"}, {"horror", "🧟"}, {"just chatting", "💬"}, {"league of legends", "🧙"}, {"lol", "🧙"},
	{"valorant", "🎯"}, {"apex", "🪂"}, {"rocket league", "🚀"}, {"tft", "♟️"}, {"elden ring", "🗡️"},
	{"csgo", "🔫"}, {"cs2", "🔫"}, {"hogwarts legacy", "🧙‍♂️"}, {"the sims", "🏠"}, {"farming simulator", "🌾"},
}

// iconFor returns the generic game icon, decorated for known games.
func iconFor(game string) string {
	if game == "" || game == "?" || game == "-" {
		return gameIcon
	}
	g := strings.ToLower(game)
	for _, e := range gameEmojis {
		if strings.Contains(g, e.key) {
			return gameIcon + " " + e.icon
		}
	}
	return gameIcon
}

// Plan renders a completed session into the weekly announcement. One entry
// per day in fixed Monday..Sunday order, separated by blank lines. Stale
// time or game entries of NoStream days are never shown. The session is not
// modified.
func Plan(s *domain.WizardSession) Document {
	var lines []string
	for _, day := range domain.Days {
		lines = append(lines, dayLine(s, day), "")
	}

	return Document{
		Title: fmt.Sprintf("📅 Streamplan der Woche (%s)", s.Week),
		Body:  strings.Join(lines, "\n"),
	}
}

func dayLine(s *domain.WizardSession, day domain.Weekday) string {
	status := s.Status(day)

	switch status {
	case domain.Maybe:
		return fmt.Sprintf("%s *%s* — Eventuell %s %s *%s*",
			status.Glyph(), day, timeOrPlaceholder(s, day), iconFor(s.DayGame[day]), gameOrPlaceholder(s, day))
	case domain.Scheduled:
		return fmt.Sprintf("%s *%s* — %-10s %s *%s*",
			status.Glyph(), day, timeOrPlaceholder(s, day), iconFor(s.DayGame[day]), gameOrPlaceholder(s, day))
	default:
		return fmt.Sprintf("%s *%s* — Kein Stream    %s -", status.Glyph(), day, gameIcon)
	}
}

func timeOrPlaceholder(s *domain.WizardSession, day domain.Weekday) string {
	if t := s.DayTime[day]; t != "" {
		return t
	}
	return "-"
}

func gameOrPlaceholder(s *domain.WizardSession, day domain.Weekday) string {
	if g := s.DayGame[day]; g != "" {
		return g
	}
	return "?"
}
