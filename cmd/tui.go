package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/breathe/internal/audio"
	"github.com/iburimskiy/breathe/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the player in the terminal",
	Long:  `Runs the same player in the terminal. Logs go to log.file when set and are discarded otherwise.`,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	model := tui.New(newModel(cfg, logger), &audio.Deck{Logger: logger})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
