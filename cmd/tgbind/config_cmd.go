package main

import (
	"fmt"

	"github.com/flemzord/tgbind/internal/config"
	"github.com/flemzord/tgbind/internal/security"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	var show bool
	check := &cobra.Command{
		Use:   "check <path>",
		Short: "Validate configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration OK (updates: %s, %d schedules)\n", cfg.Updates.Mode, len(cfg.Schedules))
			for _, s := range cfg.Schedules {
				fmt.Fprintf(out, "  %s  %-20s %s\n", s.Name, s.Cron, s.Method)
			}
			if !show {
				return nil
			}

			doc, err := redactedDocument(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, doc)
			return nil
		},
	}
	check.Flags().BoolVar(&show, "show", false, "Print the effective configuration with secrets redacted")
	cmd.AddCommand(check)
	return cmd
}

// redactedDocument renders cfg as YAML after defaults, with credentials
// replaced.
func redactedDocument(cfg *config.Config) (string, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("config: encoding: %w", err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("config: decoding: %w", err)
	}

	redactor := security.NewRedactor()
	redactor.AddLiteral(cfg.Bot.Token)
	redactor.RedactMap(doc)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("config: encoding: %w", err)
	}
	return string(out), nil
}
