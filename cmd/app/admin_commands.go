package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/airmon/cmd/app/commands"
	"github.com/allisson/airmon/internal/app"
	"github.com/allisson/airmon/internal/config"
)

func getAdminCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a new user account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Full name of the user",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email address used to log in",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Initial password",
				},
				&cli.StringFlag{
					Name:     "role",
					Aliases:  []string{"r"},
					Value:    "cleaner",
					Usage:    "User role: admin, operator or cleaner",
				},
				&cli.StringFlag{
					Name:     "university-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "University ID (UUID) the user belongs to",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("role"),
					cmd.String("university-id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "register-device",
			Usage: "Register a new sensor device and print its API token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "hardware-id",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Device MAC address (e.g., AA:BB:CC:DD:EE:FF)",
				},
				&cli.StringFlag{
					Name:     "room",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "Room where the device is installed",
				},
				&cli.StringFlag{
					Name:    "model",
					Usage:   "Device model identifier",
				},
				&cli.StringFlag{
					Name:     "university-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "University ID (UUID) the device belongs to",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				deviceUseCase, err := container.DeviceUseCase()
				if err != nil {
					return err
				}

				return commands.RunRegisterDevice(
					ctx,
					deviceUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("hardware-id"),
					cmd.String("room"),
					cmd.String("model"),
					cmd.String("university-id"),
					cmd.String("format"),
				)
			},
		},
	}
}
