package optionsslack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/bcdannyboy/optionspro/config"
)

// poster is the part of the Slack client the handlers need.
type poster interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}

type Handler struct {
	defaults config.DefaultsConfig
	commands map[string]func([]string) (string, error)
}

func NewHandler(defaults config.DefaultsConfig) *Handler {
	h := &Handler{defaults: defaults}
	h.commands = map[string]func([]string) (string, error){
		"/help":     func([]string) (string, error) { return helpText, nil },
		"/greeks":   h.greeks,
		"/prob":     h.probability,
		"/payoff":   h.payoff,
		"/strategy": h.strategy,
	}
	return h
}

// HandleCommand replies to cmd in its channel.
func (h *Handler) HandleCommand(cmd slack.SlashCommand, client poster) error {
	_, _, err := client.PostMessage(cmd.ChannelID, slack.MsgOptionText(h.Respond(cmd), false))
	return err
}

// Respond builds the reply text for cmd. Errors become user-facing text.
func (h *Handler) Respond(cmd slack.SlashCommand) string {
	run, ok := h.commands[cmd.Command]
	if !ok {
		return fmt.Sprintf("Unknown command %s\n\n%s", cmd.Command, helpText)
	}
	text, err := run(strings.Fields(cmd.Text))
	if err != nil {
		return "Error: " + err.Error()
	}
	return text
}

const helpText = "Available commands:\n" +
	"/help - Show this help message\n" +
	"/greeks <stock> <strike> <premium> [days] [vol%] [rate%] [call|put] - Black-Scholes Greeks\n" +
	"/prob <stock> <strike> <premium> [days] [vol%] [call|put] - ITM/OTM probability and breakeven\n" +
	"/payoff <strategy> <stock> <strike> <premium> [width] - P/L at expiration\n" +
	"/strategy [id|all|beginner|intermediate|advanced|bullish|bearish|neutral|volatile] - Strategy guide"
