package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/panvault/cmd/app/commands"
	authService "github.com/allisson/panvault/internal/auth/service"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-vault-key",
			Usage: "Generate a new vault key for PAN encryption and audit signing",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateVaultKey(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
		{
			Name:  "create-auth-token",
			Usage: "Generate a merchant bearer token and its Argon2id hash",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				credentialService, err := authService.NewCredentialService("")
				if err != nil {
					return err
				}
				return commands.RunCreateAuthToken(credentialService, commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}
