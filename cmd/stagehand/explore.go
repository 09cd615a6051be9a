package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stagehand/internal/explorer"
	"stagehand/internal/pipeline"
	"stagehand/internal/toolchain"
	"stagehand/internal/view"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [flags] [file]",
	Short: "Open the interactive stage explorer",
	Long:  `Explore opens a panel grid showing the snippet at every compilation stage, with cross-stage line highlighting`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	ctrl := pipeline.NewController(toolchain.NewBuiltin(), s.caps)
	state := view.NewStateWith(s.caps, s.cfg.StartupPanels())
	model := explorer.New(ctrl, state, s.source)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}
	return nil
}
