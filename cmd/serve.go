package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/krishisahayak/internal/api"
	"github.com/krishisahayak/internal/config"
)

// ServeCommand returns the CLI command for starting the advisory API server
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the advisory API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port for the API server (overrides config)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if port := c.Int("port"); port != 0 {
				cfg.Server.Port = port
			}

			logger := newLogger()
			svcs, err := buildServices(c.Context, cfg, logger)
			if err != nil {
				return err
			}

			logger.Info().Int("port", cfg.Server.Port).Msg("Starting advisory API server")
			server := api.NewServer(cfg.Server.Port, svcs.pipeline, svcs.profiles, svcs.messages, svcs.formatter, logger)
			return server.Start()
		},
	}
}
