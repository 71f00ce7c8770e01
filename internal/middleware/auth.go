package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Restrict creates middleware that only lets the listed user IDs through.
// Everyone else gets the denial message and the update is dropped.
func Restrict(allowed []int64, denial string, logger *zap.Logger) tele.MiddlewareFunc {
	ids := make(map[int64]struct{}, len(allowed))
	for _, id := range allowed {
		ids[id] = struct{}{}
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if _, ok := ids[userID]; !ok {
				logger.Warn("Rejected command from unpermitted user",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send(denial)
			}

			return next(c)
		}
	}
}
