package goscheme

import (
	"bytes"
	"fmt"
)

type ValueType int

const (
	ValueInt ValueType = iota
	ValueFloat
	ValueBool
	ValueString
	ValueSymbol
	ValueLambda
	ValueList
)

// Value is both the parse tree node and the runtime value. Atoms keep their
// payload in v; List keeps its elements in list; Lambda keeps its parameter
// names in params and the elements of its single body expression in list.
type Value struct {
	t      ValueType
	v      interface{}
	params []string
	list   []*Value
}

func (n *Value) String() string {
	var buf bytes.Buffer
	switch n.t {
	case ValueString:
		fmt.Fprintf(&buf, "\"%s\"", n.v)
	case ValueLambda:
		fmt.Fprint(&buf, "lambda (")
		for _, p := range n.params {
			fmt.Fprintf(&buf, "%s, ", p)
		}
		fmt.Fprint(&buf, ")")
	case ValueList:
		fmt.Fprint(&buf, "(")
		for i, item := range n.list {
			if i > 0 {
				fmt.Fprint(&buf, " ")
			}
			fmt.Fprint(&buf, item)
		}
		fmt.Fprint(&buf, ")")
	default:
		fmt.Fprint(&buf, n.v)
	}
	return buf.String()
}
