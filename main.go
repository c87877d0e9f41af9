package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bcdannyboy/optionspro/config"
	"github.com/bcdannyboy/optionspro/engine"
	optionsslack "github.com/bcdannyboy/optionspro/slack"
)

const usage = `usage: optionspro [-config path] <command> [flags]

commands:
  greeks       Black-Scholes Greeks, intrinsic and time value
  probability  ITM/OTM probability and breakeven
  payoff       profit/loss curve at expiration for a strategy
  strategies   strategy catalog (-id, -difficulty, -outlook)
  json         read one JSON request on stdin, write the response
  slack        run the Slack slash-command bot`

func main() {
	configPath := flag.String("config", "", "path to config.toml (default $OPTIONSPRO_CONFIG or ./config.toml)")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if *configPath == "" {
		*configPath = "config.toml"
		if p := os.Getenv("OPTIONSPRO_CONFIG"); p != "" {
			*configPath = p
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.General.LogLevel),
	})))

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, args[0], args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, cmd string, args []string, stdin io.Reader, stdout io.Writer) error {
	switch cmd {
	case "greeks", "probability", "payoff", "strategies":
		req, err := parseRequest(cfg.Defaults, cmd, args)
		if err != nil {
			return err
		}
		resp, err := engine.Handle(req)
		if err != nil {
			return err
		}
		return writeResponse(stdout, resp)

	case "json":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		_, err = stdout.Write(append(engine.ServeJSON(data), '\n'))
		return err

	case "slack":
		if err := cfg.LoadEnv(".env"); err != nil {
			return err
		}
		if cfg.Slack.AppToken == "" || cfg.Slack.BotToken == "" {
			return fmt.Errorf("SLACK_APP_TOKEN and SLACK_BOT_TOKEN must be set")
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		slog.Info("starting slack bot")
		bot := optionsslack.NewSlackBot(cfg.Slack, cfg.Defaults)
		if err := bot.Start(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("slack bot: %w", err)
		}
		slog.Info("slack bot stopped")
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// parseRequest maps subcommand flags onto an engine request, falling back to
// the configured defaults.
func parseRequest(d config.DefaultsConfig, cmd string, args []string) (engine.Request, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	p := engine.Params{}
	fs.Float64Var(&p.StockPrice, "stock", 0, "underlying price")
	fs.Float64Var(&p.StrikePrice, "strike", 0, "strike price")
	fs.Float64Var(&p.OptionPrice, "premium", 0, "option price paid (net debit/credit for spreads)")
	fs.IntVar(&p.DaysToExpiry, "days", d.DaysToExpiry, "days to expiry")
	fs.Float64Var(&p.Volatility, "vol", d.Volatility, "annualised volatility, percent")
	fs.Float64Var(&p.InterestRate, "rate", d.InterestRate, "risk-free rate, percent")
	fs.StringVar(&p.OptionType, "type", d.OptionType, "call or put")
	fs.StringVar(&p.StrategyType, "strategy", "long-call", "strategy id for payoff")
	fs.Float64Var(&p.StrikeWidth, "width", d.StrikeWidth, "strike spacing for multi-leg strategies")
	fs.IntVar(&p.BackDaysToExpiry, "back-days", d.BackDaysToExpiry, "days left on the back month at front expiry (calendar)")
	id := fs.String("id", "", "strategy id")
	difficulty := fs.String("difficulty", "", "Beginner, Intermediate or Advanced")
	outlook := fs.String("outlook", "", "bullish, bearish, neutral or volatile")
	if err := fs.Parse(args); err != nil {
		return engine.Request{}, err
	}

	req := engine.Request{Params: p}
	switch cmd {
	case "greeks":
		req.Action = engine.ActionCalculateGreeks
	case "probability":
		req.Action = engine.ActionCalculateProbability
	case "payoff":
		req.Action = engine.ActionGeneratePayoff
	case "strategies":
		switch {
		case *id != "":
			req.Action, req.StrategyID = engine.ActionGetStrategy, *id
		case *difficulty != "":
			req.Action, req.Difficulty = engine.ActionGetStrategiesByDifficulty, *difficulty
		case *outlook != "":
			req.Action, req.Outlook = engine.ActionGetRecommendedStrategies, *outlook
		default:
			req.Action = engine.ActionGetAllStrategies
		}
	}
	return req, nil
}

func writeResponse(w io.Writer, resp engine.Response) error {
	data, err := engine.EncodeResponse(resp)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
