package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/panvault/cmd/app/commands"
	"github.com/allisson/panvault/internal/client"
	"github.com/allisson/panvault/internal/config"
)

func getMerchantCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "tokenize",
			Usage: "Exchange a card number for a token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "pan",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Card number (digits only)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunTokenize(
					ctx,
					newMerchantClient(),
					commands.DefaultIO().Writer,
					cmd.String("pan"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "detokenize",
			Usage: "Retrieve the card number stored under a token",
			Flags: []cli.Flag{tokenFlag(true), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunDetokenize(
					ctx,
					newMerchantClient(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "charge",
			Usage: "Charge an amount against a token",
			Flags: []cli.Flag{
				tokenFlag(true),
				&cli.StringFlag{
					Name:     "amount",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Positive decimal amount (e.g. 49.99)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCharge(
					ctx,
					newMerchantClient(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("amount"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "purchases",
			Usage: "List recorded purchases",
			Flags: []cli.Flag{
				tokenFlag(false),
				&cli.IntFlag{
					Name:  "offset",
					Value: 0,
					Usage: "Number of records to skip",
				},
				&cli.IntFlag{
					Name:  "limit",
					Value: 100,
					Usage: "Maximum number of records to return",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunListPurchases(
					ctx,
					newMerchantClient(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					int(cmd.Int("offset")),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "merchant",
			Usage: "Start the interactive merchant terminal",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunMerchantMenu(ctx, newMerchantClient(), commands.DefaultIO())
			},
		},
	}
}

func tokenFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "token",
		Aliases:  []string{"t"},
		Required: required,
		Usage:    "Vault token",
	}
}

// newMerchantClient builds the API client from VAULT_API_URL and MERCHANT_TOKEN.
func newMerchantClient() *client.Client {
	cfg := config.Load()
	return client.New(client.Config{
		BaseURL: cfg.VaultAPIURL,
		Token:   cfg.MerchantToken,
	})
}
