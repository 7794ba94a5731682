package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ordersaga/cmd/app/commands"
	"github.com/allisson/ordersaga/internal/app"
	"github.com/allisson/ordersaga/internal/config"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getSagaCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "relay",
			Usage: "Run the outbox relay without the API server",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "once",
					Value: false,
					Usage: "Publish a single batch and exit",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(context.Background()) }()

				ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer cancel()

				if _, err := container.TracerProvider(); err != nil {
					return err
				}

				relay, err := container.Relay()
				if err != nil {
					return err
				}

				return commands.RunRelay(
					ctx,
					relay,
					container.Logger(),
					os.Stdout,
					cmd.Bool("once"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "reap-reservations",
			Usage: "Release the stock of expired inventory reservations once",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if cfg.ServiceName != config.ServiceInventory {
					return fmt.Errorf(
						"reap-reservations requires SERVICE_NAME=%s, got %q",
						config.ServiceInventory,
						cfg.ServiceName,
					)
				}

				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				reaper, err := container.Reaper()
				if err != nil {
					return err
				}

				return commands.RunReapReservations(
					ctx,
					reaper,
					container.Logger(),
					os.Stdout,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "redrive-dlt",
			Usage: "Republish dead-lettered messages to their original topic",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "topic",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Source topic (or its .DLT topic) to redrive",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   0,
					Usage:   "Maximum number of messages to redrive (0 for all)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunRedriveDLT(
					ctx,
					container.Redriver(),
					container.Logger(),
					os.Stdout,
					cmd.String("topic"),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
	}
}
