package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stagehand/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "stagehand",
	Short: "Interactive compiler pipeline explorer",
	Long:  `Stagehand shows a snippet moving through every compilation stage, side by side`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to stagehand.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().String("toolchain", "", "toolchain version (full|classic), overrides the config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	return flag == "on" || (flag == "auto" && isTerminal(f))
}
