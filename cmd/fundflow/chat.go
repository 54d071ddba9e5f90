package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fundflow"
	"github.com/aretw0/fundflow/internal/config"
	"github.com/aretw0/fundflow/internal/presentation/tui"
	"github.com/aretw0/fundflow/pkg/observability"
	"github.com/aretw0/fundflow/pkg/runner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive planning conversation",
	Long: `Runs the interview in the terminal. Pick a choice by its number or label,
type answers when asked, "restart" to start over and "quit" to leave.

With --json every screen update is written as one JSON object per line and
lines are read as {"type":"button","index":n} or {"type":"input","value":"..."}.`,
	RunE: runChat,
}

func init() {
	addChatFlags(chatCmd)
	rootCmd.AddCommand(chatCmd)
}

func addChatFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Use JSON-lines input and output")
	cmd.Flags().Bool("no-banner", false, "Do not print the banner")
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	jsonMode, _ := cmd.Flags().GetBool("json")
	noBanner, _ := cmd.Flags().GetBool("no-banner")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adv, err := config.BuildAdvisor(ctx, cfg.Advisor, nil, logger)
	if err != nil {
		return err
	}
	defer adv.Close()

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	var handler runner.IOHandler
	if jsonMode {
		handler = runner.NewJSONHandler(os.Stdin, os.Stdout)
	} else {
		if interactive && !noBanner {
			tui.PrintBanner(os.Stdout)
		}
		handler = runner.NewTextHandler(os.Stdin, os.Stdout,
			runner.WithTextHandlerRenderer(tui.NewRenderer()),
			runner.WithInteractive(interactive),
		)
	}

	engine, err := fundflow.New(handler,
		fundflow.WithAdvisor(adv),
		fundflow.WithLogger(logger),
		fundflow.WithStrict(cfg.Strict),
		fundflow.WithLifecycleHooks(observability.LoggingHooks(logger)),
	)
	if err != nil {
		return err
	}

	r := runner.NewRunner(engine,
		runner.WithInputHandler(handler),
		runner.WithLogger(logger),
	)
	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("chat: %w", err)
	}
	if interactive && !jsonMode {
		fmt.Fprintln(os.Stdout, "Goodbye!")
	}
	return nil
}
