package goscheme

import (
	"fmt"
	"strconv"
	"unicode"
)

type TokenType int

const (
	TokenInt TokenType = iota
	TokenFloat
	TokenString
	TokenSymbol
	TokenLParen
	TokenRParen
	TokenError
)

type Token struct {
	t TokenType
	v interface{}
}

func (t Token) String() string {
	switch t.t {
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenString:
		return fmt.Sprintf("\"%s\"", t.v)
	default:
		return fmt.Sprintf("%v", t.v)
	}
}

// Tokenizer yields tokens one at a time, forward only. Once it has produced
// an error token the stream is exhausted. Line and column are tracked for
// diagnostics only: both 1-based, column reset to 0 on every newline.
type Tokenizer struct {
	src    []rune
	pos    int
	line   int
	col    int
	failed bool
}

func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: []rune(src), line: 1, col: 1}
}

func (tz *Tokenizer) peek() (rune, bool) {
	if tz.pos >= len(tz.src) {
		return 0, false
	}
	return tz.src[tz.pos], true
}

func (tz *Tokenizer) advance(r rune) {
	tz.pos++
	if r == '\n' {
		tz.line++
		tz.col = 0
	} else {
		tz.col++
	}
}

func (tz *Tokenizer) errorf(format string, args ...interface{}) (Token, bool) {
	tz.failed = true
	msg := fmt.Sprintf(format, args...)
	return Token{
		t: TokenError,
		v: fmt.Sprintf("%s (line %d, column %d)", msg, tz.line, tz.col),
	}, true
}

// Next returns the next token; ok is false once the input is exhausted or a
// previous call produced an error token.
func (tz *Tokenizer) Next() (Token, bool) {
	if tz.failed {
		return Token{}, false
	}

	for {
		r, ok := tz.peek()
		if !ok || !unicode.IsSpace(r) {
			break
		}
		tz.advance(r)
	}

	var text []rune
	inString := false

	for {
		r, ok := tz.peek()
		if !ok {
			break
		}

		if inString {
			if r == '"' {
				tz.advance(r)
				// the literal must be followed by a delimiter, not
				// glued to another token
				if r, ok := tz.peek(); ok && !unicode.IsSpace(r) && r != '(' && r != ')' {
					return tz.errorf("Unexpected character %c", r)
				}
				return Token{t: TokenString, v: string(text)}, true
			}
			text = append(text, r)
			tz.advance(r)
			continue
		}

		if unicode.IsSpace(r) {
			break
		}
		if r == '(' || r == ')' {
			// a bare paren is a token by itself; it ends any token in
			// progress without being consumed
			if len(text) == 0 {
				text = append(text, r)
				tz.advance(r)
			}
			break
		}
		if r == '"' {
			if len(text) > 0 {
				return tz.errorf("Unexpected character \"")
			}
			inString = true
			tz.advance(r)
			continue
		}
		text = append(text, r)
		tz.advance(r)
	}

	if inString {
		return tz.errorf("Unexpected EOF")
	}
	if len(text) == 0 {
		return Token{}, false
	}
	return classify(string(text)), true
}

func classify(s string) Token {
	switch s {
	case "(":
		return Token{t: TokenLParen}
	case ")":
		return Token{t: TokenRParen}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Token{t: TokenInt, v: i}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Token{t: TokenFloat, v: f}
	}
	return Token{t: TokenSymbol, v: s}
}
