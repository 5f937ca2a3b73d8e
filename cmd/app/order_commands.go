package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/orderflow/cmd/app/commands"
	"github.com/allisson/orderflow/internal/app"
	"github.com/allisson/orderflow/internal/config"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getOrderCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-order",
			Usage: "Create an order and stage its OrderCreated event",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "customer",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Customer name",
				},
				&cli.StringFlag{
					Name:     "product",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Product name",
				},
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Order value with up to two decimal places (e.g., 19.90)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				orderUseCase, err := container.OrderUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateOrder(
					ctx,
					orderUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("customer"),
					cmd.String("product"),
					cmd.String("value"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "process-order",
			Usage: "Run the order processor once for one order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Order ID (UUID)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				processor, err := container.Processor()
				if err != nil {
					return err
				}

				return commands.RunProcessOrder(
					ctx,
					processor,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
				)
			},
		},
		{
			Name:  "relay-once",
			Usage: "Publish one batch of unprocessed outbox records",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				relay, err := container.Relay()
				if err != nil {
					return err
				}

				return commands.RunRelayOnce(
					ctx,
					relay,
					container.Logger(),
					commands.DefaultIO().Writer,
					container.Publisher().Mode(),
					cmd.String("format"),
				)
			},
		},
	}
}
