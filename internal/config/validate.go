package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"

	"github.com/robfig/cron/v3"
)

// tokenPattern matches the <bot id>:<secret> shape of a Bot API token.
var tokenPattern = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)

var logLevels = []string{"debug", "info", "warn", "error"}

// maxPollingTimeout is the longest timeout getUpdates accepts.
const maxPollingTimeout = 50

// Validate checks the structural validity of a Config and reports every
// problem at once.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: \"1\")", cfg.Version))
	}

	errs = append(errs, validateBot(cfg.Bot)...)

	if cfg.Log.Level != "" && !slices.Contains(logLevels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("config: log.level %q must be one of %v", cfg.Log.Level, logLevels))
	}

	errs = append(errs, validateUpdates(cfg.Updates)...)

	if cfg.Metrics.Enabled && (cfg.Metrics.Path == "" || cfg.Metrics.Path[0] != '/') {
		errs = append(errs, fmt.Errorf("config: metrics.path %q must start with /", cfg.Metrics.Path))
	}

	if cfg.Tracing.Endpoint != "" {
		if _, err := url.Parse(cfg.Tracing.Endpoint); err != nil {
			errs = append(errs, fmt.Errorf("config: tracing.endpoint: %w", err))
		}
	}

	errs = append(errs, validateSchedules(cfg.Schedules)...)

	return errors.Join(errs...)
}

func validateBot(bot BotConfig) []error {
	var errs []error
	switch {
	case bot.Token == "":
		errs = append(errs, errors.New("config: bot.token is required"))
	case !tokenPattern.MatchString(bot.Token):
		errs = append(errs, errors.New("config: bot.token is malformed (want <id>:<secret>)"))
	}
	if bot.APIURL != "" {
		if err := validateURL(bot.APIURL); err != nil {
			errs = append(errs, fmt.Errorf("config: bot.api_url: %w", err))
		}
	}
	if bot.Timeout < 0 {
		errs = append(errs, errors.New("config: bot.timeout must not be negative"))
	}
	return errs
}

func validateUpdates(u UpdatesConfig) []error {
	var errs []error
	switch u.Mode {
	case "", ModePolling:
		if u.PollingTimeout < 0 || u.PollingTimeout > maxPollingTimeout {
			errs = append(errs, fmt.Errorf("config: updates.polling_timeout %d out of range [0, %d]",
				u.PollingTimeout, maxPollingTimeout))
		}
	case ModeWebhook:
		if u.WebhookURL == "" {
			errs = append(errs, errors.New("config: updates.webhook_url is required in webhook mode"))
		} else if err := validateURL(u.WebhookURL); err != nil {
			errs = append(errs, fmt.Errorf("config: updates.webhook_url: %w", err))
		} else if parsed, _ := url.Parse(u.WebhookURL); parsed.Scheme != "https" {
			errs = append(errs, errors.New("config: updates.webhook_url must use https"))
		}
	default:
		errs = append(errs, fmt.Errorf("config: updates.mode %q must be %q or %q", u.Mode, ModePolling, ModeWebhook))
	}
	return errs
}

func validateSchedules(schedules []ScheduleSpec) []error {
	var errs []error
	seen := make(map[string]bool, len(schedules))
	for i, s := range schedules {
		label := fmt.Sprintf("schedules[%d]", i)
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("config: %s: name is required", label))
		} else {
			label = fmt.Sprintf("schedule %q", s.Name)
			if seen[s.Name] {
				errs = append(errs, fmt.Errorf("config: %s is defined twice", label))
			}
			seen[s.Name] = true
		}
		if s.Method == "" {
			errs = append(errs, fmt.Errorf("config: %s: method is required", label))
		}
		if _, err := cron.ParseStandard(s.Cron); err != nil {
			errs = append(errs, fmt.Errorf("config: %s: invalid cron expression %q: %w", label, s.Cron, err))
		}
	}
	return errs
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
