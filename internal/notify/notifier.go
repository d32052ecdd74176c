package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gamewatch/internal/domain"
	"gamewatch/internal/logging"
	"gamewatch/internal/metrics"
	"gamewatch/internal/ntfy"
	"gamewatch/internal/users"
)

// Sender delivers one message to a private topic. Satisfied by *ntfy.Client.
type Sender interface {
	Publish(ctx context.Context, topic string, msg ntfy.Message) error
}

// Notifier formats and delivers game notifications. Delivery is best-effort:
// a failure is logged and reported as false, never retried here.
type Notifier struct {
	sender        Sender
	directory     *domain.Directory
	publicBaseURL string
	logger        *slog.Logger
	metrics       *metrics.Recorder
}

// NewNotifier constructs a Notifier.
func NewNotifier(sender Sender, directory *domain.Directory, publicBaseURL string, logger *slog.Logger, recorder *metrics.Recorder) *Notifier {
	return &Notifier{
		sender:        sender,
		directory:     directory,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
		metrics:       recorder,
	}
}

// Notify delivers one game notification to the user and reports whether the
// delivery succeeded. Games whose teams are missing from the directory are
// skipped: without slugs there is no watch link to send.
func (n *Notifier) Notify(ctx context.Context, user users.User, game domain.Game) bool {
	if _, ok := n.directory.Lookup(game.League, game.HomeAbbrev); !ok {
		logging.Warn(n.logger, "skipping notification for unknown team",
			slog.String(logging.FieldLeague, string(game.League)),
			slog.String(logging.FieldGameID, game.GameID),
		)
		return false
	}
	if _, ok := n.directory.Lookup(game.League, game.AwayAbbrev); !ok {
		logging.Warn(n.logger, "skipping notification for unknown team",
			slog.String(logging.FieldLeague, string(game.League)),
			slog.String(logging.FieldGameID, game.GameID),
		)
		return false
	}

	msg := ntfy.Message{
		Title:    Title(game),
		Body:     Body(game),
		ClickURL: n.WatchURL(game, user.ID),
	}

	err := n.sender.Publish(ctx, user.NtfyTopic, msg)
	if n.metrics != nil {
		n.metrics.RecordNotification(string(game.League), err == nil)
	}
	if err != nil {
		logging.Error(n.logger, "notification delivery failed", err,
			slog.String(logging.FieldUserID, user.ID),
			slog.String(logging.FieldGameKey, game.Key()),
		)
		return false
	}

	logging.Info(n.logger, "notification sent",
		slog.String(logging.FieldUserID, user.ID),
		slog.String(logging.FieldGameKey, game.Key()),
		slog.String(logging.FieldTopic, user.NtfyTopic),
	)
	return true
}

// Title builds the notification headline: "{LEAGUE}: {away} @ {home}".
func Title(game domain.Game) string {
	return fmt.Sprintf("%s: %s @ %s", strings.ToUpper(string(game.League)), game.AwayName, game.HomeName)
}

// Body builds the status line for the notification.
func Body(game domain.Game) string {
	if game.IsLive() {
		return "Game is LIVE now!"
	}
	return "Game starting soon!"
}

// WatchURL builds the click-through link: the public smart-redirect page for
// the game, carrying the recipient's ID so the redirect can honor their
// browser preference.
func (n *Notifier) WatchURL(game domain.Game, userID string) string {
	return fmt.Sprintf("%s/go/%s/%s?u=%s", n.publicBaseURL, game.League, game.GameID, userID)
}
