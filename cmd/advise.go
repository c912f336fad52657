package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/krishisahayak/internal/config"
	"github.com/krishisahayak/internal/pipeline"
	"github.com/krishisahayak/pkg/models"
)

// AdviseCommand returns the one-shot CLI command: ask a question, print the
// formatted advisory, exit.
func AdviseCommand() *cli.Command {
	return &cli.Command{
		Name:      "advise",
		Usage:     "Ask a one-shot advisory question from the command line",
		ArgsUsage: "QUERY",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "farmer",
				Usage: "Farmer ID",
				Value: "cli-farmer",
			},
			&cli.StringFlag{
				Name:    "language",
				Aliases: []string{"l"},
				Usage:   "Response language code (hin, tam, tel, kan, mal, mar, eng)",
				Value:   "hin",
			},
		},
		Action: func(c *cli.Context) error {
			query := c.Args().First()
			if query == "" {
				return fmt.Errorf("a query is required, e.g. advise \"मेरी गेहूं की फसल में मुनाफा कैसे बढ़ाऊं?\"")
			}

			lang := models.Language(c.String("language"))
			if !models.IsSupportedLanguage(lang) {
				return fmt.Errorf("unsupported language code %q", lang)
			}

			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			logger := newLogger()
			svcs, err := buildServices(c.Context, cfg, logger)
			if err != nil {
				return err
			}

			result, err := svcs.pipeline.ProcessAdvisory(c.Context, pipeline.Request{
				FarmerID: c.String("farmer"),
				Query:    query,
				Language: lang,
				Channel:  models.ChannelChat,
			})
			if err != nil {
				return err
			}

			fmt.Println(result.Response.DisplayText)
			return nil
		},
	}
}
