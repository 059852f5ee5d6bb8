package goscheme

import (
	"errors"
	"fmt"
)

// Parse turns source text into a single list Value. A program always opens
// with a paren; everything up to the matching close paren becomes the
// top-level list. Nesting depth is bounded by the call stack.
func Parse(src string) (*Value, error) {
	tz := NewTokenizer(src)

	tok, ok := tz.Next()
	if !ok {
		return nil, errors.New("Parse error: expected (, found end of input")
	}
	if tok.t == TokenError {
		return nil, fmt.Errorf("Parse error: %v", tok.v)
	}
	if tok.t != TokenLParen {
		return nil, fmt.Errorf("Parse error: expected (, found %s", tok)
	}
	return parseList(tz)
}

func parseList(tz *Tokenizer) (*Value, error) {
	list := []*Value{}
	for {
		tok, ok := tz.Next()
		if !ok {
			return nil, errors.New("Parse error: unexpected EOF")
		}
		switch tok.t {
		case TokenInt:
			list = append(list, &Value{t: ValueInt, v: tok.v})
		case TokenFloat:
			list = append(list, &Value{t: ValueFloat, v: tok.v})
		case TokenString:
			list = append(list, &Value{t: ValueString, v: tok.v})
		case TokenSymbol:
			list = append(list, &Value{t: ValueSymbol, v: tok.v})
		case TokenLParen:
			sub, err := parseList(tz)
			if err != nil {
				return nil, err
			}
			list = append(list, sub)
		case TokenRParen:
			return &Value{t: ValueList, list: list}, nil
		case TokenError:
			return nil, fmt.Errorf("Parse error: %v", tok.v)
		}
	}
}
