package optionsslack

import (
	"context"
	"log/slog"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/bcdannyboy/optionspro/config"
)

type SlackBot struct {
	client       *slack.Client
	socketClient *socketmode.Client
	eventHandler *Handler
}

func NewSlackBot(cfg config.SlackConfig, defaults config.DefaultsConfig) *SlackBot {
	client := slack.New(
		cfg.BotToken,
		slack.OptionAppLevelToken(cfg.AppToken),
	)

	logHandler := slog.Default().Handler().WithAttrs([]slog.Attr{slog.String("component", "socketmode")})
	socketClient := socketmode.New(
		client,
		socketmode.OptionDebug(cfg.Debug),
		socketmode.OptionLog(slog.NewLogLogger(logHandler, slog.LevelDebug)),
	)

	return &SlackBot{
		client:       client,
		socketClient: socketClient,
		eventHandler: NewHandler(defaults),
	}
}

// Start serves slash commands until ctx is cancelled.
func (sb *SlackBot) Start(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-sb.socketClient.Events:
				if !ok {
					return
				}
				switch evt.Type {
				case socketmode.EventTypeSlashCommand:
					cmd, ok := evt.Data.(slack.SlashCommand)
					if !ok {
						continue
					}
					sb.socketClient.Ack(*evt.Request)
					if err := sb.eventHandler.HandleCommand(cmd, sb.socketClient); err != nil {
						slog.Error("slash command failed", "command", cmd.Command, "error", err)
					}
				case socketmode.EventTypeConnected:
					slog.Info("connected to slack")
				}
			}
		}
	}()

	return sb.socketClient.RunContext(ctx)
}
