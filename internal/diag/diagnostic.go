package diag

import (
	"stagehand/internal/source"
)

// Code identifies the class of a diagnostic.
type Code uint16

const (
	// LexBadChar reports a byte the lexer cannot start a token with.
	LexBadChar Code = iota + 1
	// LexBadNumber reports a malformed numeric literal.
	LexBadNumber
	// SynExpectExpression reports a missing expression.
	SynExpectExpression
	// SynExpectToken reports an unexpected token where a specific one was required.
	SynExpectToken
	// SynUnknownCallee reports a call to a name the toolchain does not provide.
	SynUnknownCallee
)

func (c Code) String() string {
	switch c {
	case LexBadChar:
		return "LexBadChar"
	case LexBadNumber:
		return "LexBadNumber"
	case SynExpectExpression:
		return "SynExpectExpression"
	case SynExpectToken:
		return "SynExpectToken"
	case SynUnknownCallee:
		return "SynUnknownCallee"
	}
	return "Unknown"
}

// Diagnostic is one reported problem with its primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

// Reporter consumes diagnostics as they are produced.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string)
}
