// Package cmd wires configuration, logging and the front-ends into the
// breathe command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iburimskiy/breathe/internal/app"
	"github.com/iburimskiy/breathe/internal/audio"
	"github.com/iburimskiy/breathe/internal/config"
	"github.com/iburimskiy/breathe/internal/game"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Play a looping track with a breathing circle",
	Long: `Plays a looping audio track and draws a circle that grows and shrinks
on a ten second cycle while it plays. Stopping fades the track out over two seconds.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./breathe.yaml)")
	flags.String("track", config.DefaultTrack, "audio file path or http(s) URL")
	flags.Bool("pick", false, "choose the track with a file dialog")
	flags.Bool("auto-reset", false, "return to the start state once the fade-out finishes")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup resolves configuration and the logger for a command. logFallback is
// where logs go when no log file is configured.
func setup(logFallback io.Writer) (config.Config, *slog.Logger, io.Closer, error) {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if err := bindFlags(v); err != nil {
		return config.Config{}, nil, nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, closer, err := config.NewLogger(cfg.Log, logFallback)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	if pick, _ := rootCmd.PersistentFlags().GetBool("pick"); pick {
		path, err := pickTrack()
		if err != nil {
			_ = closer.Close()
			return config.Config{}, nil, nil, err
		}
		if path != "" {
			cfg.Track = path
		}
	}
	return cfg, logger, closer, nil
}

// bindFlags lets explicitly set flags win over env and file values.
func bindFlags(v *viper.Viper) error {
	flags := rootCmd.PersistentFlags()
	for key, flag := range map[string]string{
		"track":      "track",
		"auto_reset": "auto-reset",
		"log.level":  "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

func newModel(cfg config.Config, logger *slog.Logger) app.Model {
	return app.New(audio.NewLoader(logger), app.Options{
		Source:    cfg.Track,
		LoopEnd:   cfg.LoopEnd,
		Fade:      cfg.Fade,
		AutoReset: cfg.AutoReset,
		Logger:    logger,
	})
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	g := game.New(newModel(cfg, logger), game.Options{Logger: logger})

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Breathe - Space: start/stop, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "track", cfg.Track, "autoReset", cfg.AutoReset)
	g.Start()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
