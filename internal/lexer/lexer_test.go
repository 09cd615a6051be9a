package lexer_test

import (
	"testing"

	"stagehand/internal/diag"
	"stagehand/internal/lexer"
	"stagehand/internal/source"
	"stagehand/internal/token"
)

func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	file := source.NewFile("test.mini", []byte(input))
	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: bag})
	return lx, bag
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestAssignmentTokens(t *testing.T) {
	lx, bag := makeTestLexer("a = 1\nb = 2\n")
	tokens := collectAllTokens(lx)

	want := []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.Newline,
		token.Ident, token.Assign, token.IntLit, token.Newline,
		token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
	if bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
	if tokens[0].Text != "a" || tokens[2].Text != "1" {
		t.Errorf("texts = %q %q, want a 1", tokens[0].Text, tokens[2].Text)
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"123", token.IntLit},
		{"1.5", token.FloatLit},
		{".5", token.FloatLit},
		{"1.", token.FloatLit},
		{"2e3", token.FloatLit},
		{"1.5e-3", token.FloatLit},
	}
	for _, tc := range cases {
		lx, bag := makeTestLexer(tc.input)
		tok := lx.Next()
		if tok.Kind != tc.kind {
			t.Errorf("%q: kind = %s, want %s", tc.input, tok.Kind, tc.kind)
		}
		if tok.Text != tc.input {
			t.Errorf("%q: text = %q", tc.input, tok.Text)
		}
		if bag.HasErrors() {
			t.Errorf("%q: unexpected diagnostics: %v", tc.input, bag.Items())
		}
	}
}

func TestMalformedNumber(t *testing.T) {
	lx, bag := makeTestLexer("12ab")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %s, want Invalid", tok.Kind)
	}
	if !bag.HasErrors() {
		t.Error("expected a diagnostic for malformed number")
	}
}

func TestBadChar(t *testing.T) {
	lx, bag := makeTestLexer("a ? b")
	tokens := collectAllTokens(lx)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for '?'")
	}
	if tokens[1].Kind != token.Invalid {
		t.Errorf("token 1 = %s, want Invalid", tokens[1].Kind)
	}
}

func TestCommentsAndBlankLines(t *testing.T) {
	lx, _ := makeTestLexer("# header\n\n  a = 1  # trailing\n\n\n")
	tokens := collectAllTokens(lx)
	want := []token.Kind{
		token.Newline, token.Ident, token.Assign, token.IntLit, token.Newline, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSemicolonIsTerminator(t *testing.T) {
	lx, _ := makeTestLexer("a = 1; b = 2")
	tokens := collectAllTokens(lx)
	want := []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.Newline,
		token.Ident, token.Assign, token.IntLit, token.EOF,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("x + y")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Errorf("Peek = %v, Next = %v", p, n)
	}
	if lx.Next().Kind != token.Plus {
		t.Error("expected Plus after consuming Ident")
	}
}
