package handler

import (
	"streamplan/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	plans  *service.PlanService
	setup  *service.SetupService
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	plans *service.PlanService,
	setup *service.SetupService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:    bot,
		plans:  plans,
		setup:  setup,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers. The passed middleware guards
// the wizard surface (streamers) and the setup command (admins).
func (h *Handler) RegisterHandlers(streamerOnly, adminOnly tele.MiddlewareFunc) {
	// Commands
	h.bot.Handle("/streamplan", h.handleStreamplan, streamerOnly)
	h.bot.Handle("/setup", h.handleSetup, adminOnly)

	// Form replies (time and game entry)
	h.bot.Handle(tele.OnText, h.handleText, streamerOnly)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnBack, h.handleBack, streamerOnly)
	h.bot.Handle(&btnNext, h.handleNext, streamerOnly)
	h.bot.Handle(&btnProceed, h.handleProceed, streamerOnly)
	h.bot.Handle(&btnCancel, h.handleCancel, streamerOnly)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback, streamerOnly)
}

// Inline keyboard buttons
var (
	btnBack = tele.Btn{
		Unique: "nav_back",
		Text:   "⬅️ Zurück",
	}
	btnNext = tele.Btn{
		Unique: "nav_next",
		Text:   "➡️ Weiter",
	}
	btnProceed = tele.Btn{
		Unique: "nav_proceed",
		Text:   "🕒 Weiter zur Zeiteingabe",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Abbrechen",
	}
)

const (
	msgExpired       = "⏳ Deine Sitzung ist abgelaufen. Starte mit /streamplan neu."
	msgPosted        = "✅ Dein Streamplan wurde gepostet!"
	msgNoDestination = "❌ Kein Ziel-Kanal konfiguriert. Bitte zuerst /setup ausführen."
	msgPostFailed    = "❌ Der Streamplan konnte nicht gepostet werden. Versuche es später erneut."
	msgCancelled     = "Abgebrochen. Starte mit /streamplan neu."
)
