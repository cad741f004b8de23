package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/flemzord/tgbind/internal/cron"
	"github.com/spf13/cobra"
)

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Send the configured scheduled requests",
		Long: `Run every request listed under "schedules" on its cron expression until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = env.shutdown(context.WithoutCancel(cmd.Context())) }()

			s, err := newScheduler(env)
			if err != nil {
				return err
			}
			if len(s.Jobs()) == 0 {
				return fmt.Errorf("no schedules configured")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := s.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			return s.Stop(context.WithoutCancel(ctx))
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			for _, s := range env.cfg.Schedules {
				next := "-"
				if sched, err := cron.ParseSchedule(s.Cron); err == nil {
					next = sched.Next(time.Now()).Format("2006-01-02 15:04 MST")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-16s %-20s next: %s\n", s.Name, s.Cron, s.Method, next)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "run <name>",
		Short: "Send one scheduled request now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = env.shutdown(context.WithoutCancel(cmd.Context())) }()

			s, err := newScheduler(env)
			if err != nil {
				return err
			}
			if _, err := s.Trigger(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: sent\n", args[0])
			return nil
		},
	})
	return cmd
}

func newScheduler(env *appEnv) (*cron.Scheduler, error) {
	s := cron.NewScheduler(env.logger)
	for _, spec := range env.cfg.Schedules {
		job := &cron.RequestJob{
			JobName: spec.Name,
			Expr:    spec.Cron,
			Bot:     env.bot,
			Method:  spec.Method,
			Params:  spec.Params,
			Logger:  env.logger,
		}
		if err := s.RegisterJob(job); err != nil {
			return nil, err
		}
	}
	return s, nil
}
