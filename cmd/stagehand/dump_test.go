package main

import (
	"strings"
	"testing"

	"stagehand/internal/pipeline"
	"stagehand/internal/toolchain"
)

func TestDumpStagesDefaultsToCapabilities(t *testing.T) {
	caps := toolchain.Capabilities(toolchain.VersionClassic)
	stages, err := dumpStages(nil, caps)
	if err != nil {
		t.Fatalf("dumpStages failed: %v", err)
	}
	if len(stages) != 4 {
		t.Errorf("stages = %v, want the 4 classic stages", stages)
	}
	for _, kind := range stages {
		if !caps.Has(kind) {
			t.Errorf("stage %s is outside the capability set", kind)
		}
	}
}

func TestDumpStagesRejectsUnknownName(t *testing.T) {
	caps := toolchain.Capabilities(toolchain.VersionFull)
	if _, err := dumpStages([]string{"backend"}, caps); err == nil {
		t.Error("expected error for unknown stage name")
	}
}

func TestDumpStagesRejectsUnavailableStage(t *testing.T) {
	caps := toolchain.Capabilities(toolchain.VersionClassic)
	if _, err := dumpStages([]string{"opt-ast"}, caps); err == nil {
		t.Error("expected error for stage missing from classic")
	}
}

func TestRenderDumpPretty(t *testing.T) {
	caps := toolchain.Capabilities(toolchain.VersionFull)
	ctrl := pipeline.NewController(toolchain.NewBuiltin(), caps)
	if err := ctrl.SetSource("a = 1\n"); err != nil {
		t.Fatalf("SetSource failed: %v", err)
	}

	var b strings.Builder
	renderDumpPretty(&b, ctrl, []toolchain.StageKind{toolchain.StageSource, toolchain.StageFinalBytecode})
	out := b.String()

	if !strings.Contains(out, "== Source ==") || !strings.Contains(out, "== Final Bytecode ==") {
		t.Errorf("missing stage headers:\n%s", out)
	}
	if !strings.Contains(out, "   1 | a = 1") {
		t.Errorf("missing attributed source line:\n%s", out)
	}
	if !strings.Contains(out, "     | ") {
		t.Errorf("missing unattributed instruction row:\n%s", out)
	}
}

func TestRenderDumpJSON(t *testing.T) {
	caps := toolchain.Capabilities(toolchain.VersionFull)
	ctrl := pipeline.NewController(toolchain.NewBuiltin(), caps)
	if err := ctrl.SetSource("a = 1\n"); err != nil {
		t.Fatalf("SetSource failed: %v", err)
	}

	var b strings.Builder
	if err := renderDumpJSON(&b, ctrl, []toolchain.StageKind{toolchain.StageTokens}); err != nil {
		t.Fatalf("renderDumpJSON failed: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, `"stage": "tokens"`) {
		t.Errorf("missing stage field:\n%s", out)
	}
	if !strings.Contains(out, `"line": 1`) {
		t.Errorf("missing line attribution:\n%s", out)
	}
}
