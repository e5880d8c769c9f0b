package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/shapecast/decode"
	"github.com/reoring/shapecast/i18n"
)

// app carries the state shared by subcommands once configuration is loaded.
type app struct {
	cfg        *viper.Viper
	logger     *slog.Logger
	numberMode decode.NumberMode
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New(), logger: slog.Default()}
	var configFile string

	root := &cobra.Command{
		Use:   "shapecast",
		Short: "Check JSON and YAML documents against shape descriptors",
		Long: `shapecast loads a spec descriptor (YAML or JSON) such as

  object:
    name: string
    tags:
      array: string
    id:
      union: [number, string]

and checks documents against it, prints its JSON Schema projection or
prints a sample document that conforms to it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, configFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: ./shapecast.yaml or $HOME/.config/shapecast/shapecast.yaml)")
	pf.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("lang", defaultLang, "message language (en, ja)")
	pf.String("number-mode", defaultNumberMode, "number representation for decoding and the descriptor type number (float64, json)")
	_ = a.cfg.BindPFlag(cfgKeyLogLevel, pf.Lookup("log-level"))
	_ = a.cfg.BindPFlag(cfgKeyLang, pf.Lookup("lang"))
	_ = a.cfg.BindPFlag(cfgKeyNumberMode, pf.Lookup("number-mode"))

	root.AddCommand(newCheckCmd(a), newSchemaCmd(a), newSampleCmd(a))
	return root
}

// init loads configuration and applies it to logging, messages and decoding.
func (a *app) init(cmd *cobra.Command, configFile string) error {
	if err := loadConfig(a.cfg, configFile); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.GetString(cfgKeyLogLevel))); err != nil {
		return fmt.Errorf("invalid %s: %w", cfgKeyLogLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	mode, err := decode.ParseNumberMode(a.cfg.GetString(cfgKeyNumberMode))
	if err != nil {
		return err
	}
	a.numberMode = mode

	i18n.SetLanguage(a.cfg.GetString(cfgKeyLang))

	a.logger.Debug("configuration loaded",
		"config", a.cfg.ConfigFileUsed(),
		"number_mode", mode.String(),
		"lang", a.cfg.GetString(cfgKeyLang))
	return nil
}
