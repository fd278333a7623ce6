package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/lingua"
	"github.com/cours-de-latin/lingua/internal/app"
	"github.com/cours-de-latin/lingua/internal/config"
)

// cli holds the flags shared by every subcommand.
type cli struct {
	dataDir  string
	lang     string
	logLevel string

	logger *slog.Logger
	reg    *lingua.Registry
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "lingua",
		Short:         "Multilingual morphology and transliteration",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.logger = app.NewLogger(config.LogConfig{Level: c.logLevel, Format: "text"})
		},
	}
	root.PersistentFlags().StringVar(&c.dataDir, "data", "", "language data directory (default: embedded tables)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		c.langsCmd(),
		c.infoCmd(),
		c.inflectCmd("conjugate", "Conjugate a verb", lingua.KindConjugation),
		c.inflectCmd("declense", "Decline a noun", lingua.KindDeclension),
		c.derivateCmd(),
		c.stemCmd(),
		c.lemmatizeCmd(),
		c.numberCmd(),
		c.schemesCmd(),
		c.transCmd(),
	)
	return root
}

// registry loads the language tables once per invocation.
func (c *cli) registry() (*lingua.Registry, error) {
	if c.reg != nil {
		return c.reg, nil
	}
	var (
		reg *lingua.Registry
		err error
	)
	if c.dataDir == "" {
		reg, err = lingua.Default()
	} else {
		reg, err = lingua.LoadDir(c.dataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	if c.logger != nil {
		c.logger.Debug("data loaded",
			slog.String("dir", c.dataDir),
			slog.Any("languages", reg.Languages(lingua.ServiceInfo)),
		)
	}
	c.reg = reg
	return reg, nil
}

func (c *cli) morpho() (lingua.Morpho, error) {
	reg, err := c.registry()
	if err != nil {
		return nil, err
	}
	return reg.Morpho(c.lang)
}

// addLangFlag registers the -l/--lang flag on cmd.
func (c *cli) addLangFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.lang, "lang", "l", "eng", "language code (ISO 639-1 or 639-2)")
}
