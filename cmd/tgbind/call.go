package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flemzord/tgbind/pkg/bot"
	"github.com/flemzord/tgbind/pkg/retry"
	"github.com/flemzord/tgbind/pkg/types"
	"github.com/spf13/cobra"
)

func callCmd() *cobra.Command {
	var (
		params   []string
		files    []string
		useRetry bool
	)

	cmd := &cobra.Command{
		Use:   "call <method>",
		Short: "Call a Bot API method and print its result",
		Long: `Call any Bot API method by name.

Parameters are given as -p name=value. A value that parses as JSON is sent
as that JSON value, anything else as a string. Local files are uploaded with
-f name=path.`,
		Example: `  tgbind call getMe
  tgbind call sendMessage -p chat_id=42 -p text="hello"
  tgbind call sendPhoto -p chat_id=@channel -f photo=./cat.jpg -p caption=meow`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = env.shutdown(context.WithoutCancel(cmd.Context())) }()

			fields, err := parseParams(params)
			if err != nil {
				return err
			}
			uploads, err := loadFiles(files)
			if err != nil {
				return err
			}

			build := func() *bot.RawRequest[json.RawMessage] {
				req := bot.Raw[json.RawMessage](env.bot, args[0])
				for _, f := range fields {
					req.Param(f.name, f.value)
				}
				for _, u := range uploads {
					req.File(u.name, types.FileFromBytes(u.filename, u.data))
				}
				return req
			}

			var result json.RawMessage
			if useRetry {
				result, err = retry.Do(cmd.Context(), func(ctx context.Context) (json.RawMessage, error) {
					return build().Send(ctx)
				}, retry.WithNotify(func(err error, wait time.Duration) {
					env.logger.Warn("retrying request", "method", args[0], "error", err, "wait", wait)
				}))
			} else {
				result, err = build().Send(cmd.Context())
			}
			if err != nil {
				return err
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, result, "", "  "); err != nil {
				pretty.Reset()
				pretty.Write(result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Parameter as name=value (repeatable)")
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "File upload as name=path (repeatable)")
	cmd.Flags().BoolVar(&useRetry, "retry", false, "Retry on rate limits and transient failures")
	return cmd
}

type field struct {
	name  string
	value any
}

// parseParams turns name=value pairs into request fields, keeping the
// order they were given in.
func parseParams(pairs []string) ([]field, error) {
	fields := make([]field, 0, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q (want name=value)", pair)
		}
		fields = append(fields, field{name: name, value: parseValue(raw)})
	}
	return fields, nil
}

// parseValue keeps valid JSON as-is and treats anything else as a string.
func parseValue(raw string) any {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	return raw
}

type upload struct {
	name     string
	filename string
	data     []byte
}

func loadFiles(pairs []string) ([]upload, error) {
	uploads := make([]upload, 0, len(pairs))
	for _, pair := range pairs {
		name, path, ok := strings.Cut(pair, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid file %q (want name=path)", pair)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		uploads = append(uploads, upload{name: name, filename: filepath.Base(path), data: data})
	}
	return uploads, nil
}
