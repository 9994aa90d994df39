package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/WillyV3/taskview/internal/config"
	"github.com/WillyV3/taskview/internal/logging"
	"github.com/WillyV3/taskview/internal/task"
	"github.com/WillyV3/taskview/internal/theme"
	"github.com/WillyV3/taskview/internal/ui"
)

var (
	cfgFile     string
	noAltScreen bool
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	cmd := rootCmd()
	cobra.OnInitialize(initConfig)
	return cmd.ExecuteContext(ctx)
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "taskview",
		Short:        "taskview is a terminal todo list that lives for one session",
		Long:         "taskview keeps a todo list in memory: add, complete, filter and clear tasks, and switch between a dark and a light theme. Nothing is saved.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("no-alt-screen") {
				viper.Set("alt_screen", !noAltScreen)
			}
			return runView(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default $HOME/%s)", config.FileName))

	flags := cmd.Flags()
	flags.String("theme", config.Default().Theme.String(), "initial theme: dark or light")
	flags.String("filter", config.Default().Filter.String(), "initial filter: all, active or completed")
	flags.Bool("demo", false, "start with sample tasks")
	flags.BoolVar(&noAltScreen, "no-alt-screen", false, "render inline instead of full screen")
	flags.String("log-file", "", "write logs to this file")
	flags.Bool("debug", false, "enable debug logging")

	for key, name := range map[string]string{
		"theme":     "theme",
		"filter":    "filter",
		"demo":      "demo",
		"log.file":  "log-file",
		"log.debug": "debug",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind %s flag: %v", name, err))
		}
	}

	cmd.AddCommand(versionCmd())
	return cmd
}

func initConfig() {
	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigType("json")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(strings.TrimSuffix(config.FileName, ".json"))
}

func runView(ctx context.Context) error {
	cfg, err := loadConfig(cfgFile != "")
	if err != nil {
		return err
	}

	closeLog, err := logging.Init(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info().
		Str("config", viper.ConfigFileUsed()).
		Str("theme", cfg.Theme.String()).
		Str("filter", cfg.Filter.String()).
		Bool("demo", cfg.Demo).
		Msg("starting taskview")

	tasks := task.NewList()
	if cfg.Demo {
		n := task.SeedDemo(tasks)
		log.Debug().Int("tasks", n).Msg("seeded demo tasks")
	}

	backdrop := theme.NewTerminalBackdrop(os.Stdout)
	backdrop.Capture()
	defer backdrop.Restore()

	m := ui.New(ui.Options{
		Tasks:     tasks,
		Theme:     cfg.Theme,
		Filter:    cfg.Filter,
		Backdrop:  backdrop,
		CharLimit: cfg.CharLimit,
		StatusTTL: cfg.StatusTTL,
	})
	if err := ui.Run(ctx, m, ui.WithAltScreen(cfg.AltScreen)); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info().Msg("taskview exited")
	return nil
}
