package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stagehand/internal/pipeline"
	"stagehand/internal/toolchain"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] [file]",
	Short: "Print stage output without the TUI",
	Long:  `Dump runs the toolchain over the snippet and prints the selected stages to stdout`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringSlice("stage", nil, "stage to print, repeatable (source|tokens|ast|opt-ast|pseudo-bc|opt-pseudo-bc|final-bc); default all available")
	dumpCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type dumpItem struct {
	Display string `json:"display"`
	Line    int    `json:"line"`
}

type dumpStage struct {
	Stage string     `json:"stage"`
	Items []dumpItem `json:"items"`
}

func runDump(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	names, _ := cmd.Flags().GetStringSlice("stage")
	stages, err := dumpStages(names, s.caps)
	if err != nil {
		return err
	}

	ctrl := pipeline.NewController(toolchain.NewBuiltin(), s.caps)
	if err := ctrl.SetSource(s.source); err != nil {
		printCompileError(cmd, err)
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return renderDumpJSON(out, ctrl, stages)
	}
	renderDumpPretty(out, ctrl, stages)
	return nil
}

// dumpStages resolves --stage flags against the active capability set;
// with no flags every available stage is printed in pipeline order.
func dumpStages(names []string, caps toolchain.StageSet) ([]toolchain.StageKind, error) {
	if len(names) == 0 {
		var all []toolchain.StageKind
		for _, kind := range toolchain.Stages {
			if caps.Has(kind) {
				all = append(all, kind)
			}
		}
		return all, nil
	}
	var out []toolchain.StageKind
	for _, name := range names {
		kind, ok := toolchain.StageByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown stage %q", name)
		}
		if !caps.Has(kind) {
			return nil, fmt.Errorf("stage %q is not available in this toolchain version", name)
		}
		out = append(out, kind)
	}
	return out, nil
}

func renderDumpPretty(out io.Writer, ctrl *pipeline.Controller, stages []toolchain.StageKind) {
	for i, kind := range stages {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "== %s ==\n", kind.Title())
		art, ok := ctrl.Artifact(kind)
		if !ok {
			continue
		}
		for _, item := range art.Items {
			if item.Line > 0 {
				fmt.Fprintf(out, "%4d | %s\n", item.Line, item.Display)
			} else {
				fmt.Fprintf(out, "     | %s\n", item.Display)
			}
		}
	}
}

func renderDumpJSON(out io.Writer, ctrl *pipeline.Controller, stages []toolchain.StageKind) error {
	payload := make([]dumpStage, 0, len(stages))
	for _, kind := range stages {
		ds := dumpStage{Stage: kind.String(), Items: []dumpItem{}}
		if art, ok := ctrl.Artifact(kind); ok {
			for _, item := range art.Items {
				ds.Items = append(ds.Items, dumpItem{Display: item.Display, Line: item.Line})
			}
		}
		payload = append(payload, ds)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func printCompileError(cmd *cobra.Command, err error) {
	if useColor(cmd, os.Stderr) {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
