package source_test

import (
	"testing"

	"stagehand/internal/source"
)

func TestLineIndex(t *testing.T) {
	f := source.NewFile("test.mini", []byte("a = 1\nb = 2\n"))

	if got := f.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	if got := f.LineFor(0); got != 1 {
		t.Errorf("LineFor(0) = %d, want 1", got)
	}
	if got := f.LineFor(4); got != 1 {
		t.Errorf("LineFor(4) = %d, want 1", got)
	}
	if got := f.LineFor(6); got != 2 {
		t.Errorf("LineFor(6) = %d, want 2", got)
	}
	if got := f.LineText(1); got != "a = 1" {
		t.Errorf("LineText(1) = %q, want %q", got, "a = 1")
	}
	if got := f.LineText(2); got != "b = 2" {
		t.Errorf("LineText(2) = %q, want %q", got, "b = 2")
	}
}

func TestNormalization(t *testing.T) {
	f := source.NewFile("test.mini", []byte("\xEF\xBB\xBFx = 1\r\ny = 2\r\n"))
	if got := f.LineText(1); got != "x = 1" {
		t.Errorf("LineText(1) = %q, want %q", got, "x = 1")
	}
	if got := f.LineCount(); got != 2 {
		t.Errorf("LineCount() = %d, want 2", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{Start: 2, End: 5}
	b := source.Span{Start: 4, End: 9}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %v, want 2-9", got)
	}
	if got.Len() != 7 {
		t.Errorf("Len = %d, want 7", got.Len())
	}
}

func TestNoTrailingNewline(t *testing.T) {
	f := source.NewFile("test.mini", []byte("a = 1\nb"))
	if got := f.LineCount(); got != 2 {
		t.Fatalf("LineCount() = %d, want 2", got)
	}
	if got := f.LineText(2); got != "b" {
		t.Errorf("LineText(2) = %q, want %q", got, "b")
	}
}
