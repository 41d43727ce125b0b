package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/masmgr/commitgraph/config"
	"github.com/urfave/cli/v2"
)

// ConfigCmd returns the config command and its subcommands.
func ConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Create or inspect the configuration file",
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Write an example configuration file",
				ArgsUsage: "[path]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: configInitAction,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration after flag overrides",
				Flags:  commonFlags(),
				Action: configShowAction,
			},
		},
	}
}

func configInitAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = config.DefaultPath
	}

	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.SaveConfig(config.Template(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	color.New(color.FgGreen).Fprintf(c.App.Writer, "Configuration written to %s\n", path)
	return nil
}

func configShowAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}
