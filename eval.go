package goscheme

import (
	"fmt"
	"math"
)

// Eval parses source text and evaluates the resulting tree against env.
// env is the session's global scope; the caller keeps it across calls so
// definitions persist.
func Eval(src string, env *Env) (*Value, error) {
	node, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return eval(node, env)
}

func eval(node *Value, env *Env) (*Value, error) {
	switch node.t {
	case ValueSymbol:
		v, ok := env.Get(node.v.(string))
		if !ok {
			return nil, fmt.Errorf("Unbound symbol %s", node.v)
		}
		return v, nil
	case ValueLambda:
		// lambdas are only callable from application position
		return nil, fmt.Errorf("Lambda not yet evaluable")
	case ValueList:
		return evalList(node.list, env)
	default:
		return node, nil
	}
}

func evalList(list []*Value, env *Env) (*Value, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("Empty list")
	}

	if head := list[0]; head.t == ValueSymbol {
		name := head.v.(string)
		switch name {
		case "define":
			return evalDefine(list, env)
		case "if":
			return evalIf(list, env)
		case "lambda":
			return evalLambda(list)
		case "+", "-", "*", "/", "<", ">", "=", "!=":
			return evalBinop(name, list, env)
		}
		return call(name, list, env)
	}

	// no operator in head position: a plain sequence, evaluated in order.
	// a parsed program is the top-level case of this.
	ret := make([]*Value, len(list))
	for i, item := range list {
		v, err := eval(item, env)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return &Value{t: ValueList, list: ret}, nil
}

func evalDefine(list []*Value, env *Env) (*Value, error) {
	if len(list) != 3 {
		return nil, fmt.Errorf("define expects 2 arguments, given %d", len(list)-1)
	}
	if list[1].t != ValueSymbol {
		return nil, fmt.Errorf("Invalid define target: %s is not a symbol", list[1])
	}
	v, err := eval(list[2], env)
	if err != nil {
		return nil, err
	}
	env.Set(list[1].v.(string), v)
	return &Value{t: ValueBool, v: true}, nil
}

func evalIf(list []*Value, env *Env) (*Value, error) {
	if len(list) != 3 && len(list) != 4 {
		return nil, fmt.Errorf("if expects 2 or 3 arguments, given %d", len(list)-1)
	}
	cond, err := eval(list[1], env)
	if err != nil {
		return nil, err
	}
	// anything but a literal false counts as true
	if cond.t == ValueBool && !cond.v.(bool) {
		if len(list) == 4 {
			return eval(list[3], env)
		}
		return &Value{t: ValueBool, v: false}, nil
	}
	return eval(list[2], env)
}

func evalLambda(list []*Value) (*Value, error) {
	if len(list) != 3 {
		return nil, fmt.Errorf("lambda expects 2 arguments, given %d", len(list)-1)
	}
	if list[1].t != ValueList {
		return nil, fmt.Errorf("Invalid lambda parameter: %s", list[1])
	}
	params := make([]string, 0, len(list[1].list))
	for _, p := range list[1].list {
		if p.t != ValueSymbol {
			return nil, fmt.Errorf("Invalid lambda parameter: %s", p)
		}
		params = append(params, p.v.(string))
	}
	if list[2].t != ValueList {
		return nil, fmt.Errorf("Invalid lambda body: %s", list[2])
	}
	// the body expression is stored unwrapped by one level; call rebuilds
	// the list on every invocation
	return &Value{t: ValueLambda, params: params, list: list[2].list}, nil
}

func call(name string, list []*Value, env *Env) (*Value, error) {
	fn, ok := env.Get(name)
	if !ok {
		return nil, fmt.Errorf("Unbound symbol %s", name)
	}
	if fn.t != ValueLambda {
		return nil, fmt.Errorf("Trying to evaluate non-function expression: %s", name)
	}
	if len(fn.params) != len(list)-1 {
		return nil, fmt.Errorf("Lambda expects %d parameters, but was given %d",
			len(fn.params), len(list)-1)
	}

	// arguments are eager, evaluated left to right in the caller's scope.
	// the activation also chains to the caller's scope, not the definition
	// site; a lambda escaping its defining scope therefore sees the
	// caller's bindings. kept as-is, existing programs rely on it.
	scope := NewEnv(env)
	for i, p := range fn.params {
		v, err := eval(list[i+1], env)
		if err != nil {
			return nil, err
		}
		scope.Set(p, v)
	}
	return eval(&Value{t: ValueList, list: fn.list}, scope)
}

func evalBinop(op string, list []*Value, env *Env) (*Value, error) {
	if len(list) != 3 {
		return nil, fmt.Errorf("Operator %s expects 2 arguments, given %d", op, len(list)-1)
	}
	lhs, err := eval(list[1], env)
	if err != nil {
		return nil, err
	}
	rhs, err := eval(list[2], env)
	if err != nil {
		return nil, err
	}
	return applyBinop(op, lhs, rhs)
}

func applyBinop(op string, lhs, rhs *Value) (*Value, error) {
	if !isNumber(lhs) || !isNumber(rhs) {
		return nil, fmt.Errorf("Unable to apply binary operation on non-numeric values: (%s %s %s)",
			op, lhs, rhs)
	}
	if lhs.t == ValueInt && rhs.t == ValueInt {
		return intBinop(op, lhs.v.(int64), rhs.v.(int64))
	}
	return floatBinop(op, toFloat(lhs), toFloat(rhs))
}

func isNumber(v *Value) bool {
	return v.t == ValueInt || v.t == ValueFloat
}

func toFloat(v *Value) float64 {
	if v.t == ValueInt {
		return float64(v.v.(int64))
	}
	return v.v.(float64)
}

func intBinop(op string, l, r int64) (*Value, error) {
	switch op {
	case "+":
		return &Value{t: ValueInt, v: l + r}, nil
	case "-":
		return &Value{t: ValueInt, v: l - r}, nil
	case "*":
		prod, ok := checkedMul(l, r)
		if !ok {
			return nil, fmt.Errorf("Integer overflow")
		}
		return &Value{t: ValueInt, v: prod}, nil
	case "/":
		// truncating division; division by zero is a runtime panic
		return &Value{t: ValueInt, v: l / r}, nil
	case "<":
		return &Value{t: ValueBool, v: l < r}, nil
	case ">":
		return &Value{t: ValueBool, v: l > r}, nil
	case "=":
		return &Value{t: ValueBool, v: l == r}, nil
	case "!=": // non-standard, kept deliberately
		return &Value{t: ValueBool, v: l != r}, nil
	}
	panic("unknown operator " + op)
}

func floatBinop(op string, l, r float64) (*Value, error) {
	switch op {
	case "+":
		return &Value{t: ValueFloat, v: l + r}, nil
	case "-":
		return &Value{t: ValueFloat, v: l - r}, nil
	case "*":
		return &Value{t: ValueFloat, v: l * r}, nil
	case "/":
		return &Value{t: ValueFloat, v: l / r}, nil
	case "<":
		return &Value{t: ValueBool, v: l < r}, nil
	case ">":
		return &Value{t: ValueBool, v: l > r}, nil
	case "=":
		return &Value{t: ValueBool, v: l == r}, nil
	case "!=":
		return &Value{t: ValueBool, v: l != r}, nil
	}
	panic("unknown operator " + op)
}

func checkedMul(l, r int64) (int64, bool) {
	if l == 0 || r == 0 {
		return 0, true
	}
	if (l == math.MinInt64 && r == -1) || (r == math.MinInt64 && l == -1) {
		return 0, false
	}
	p := l * r
	if p/r != l {
		return 0, false
	}
	return p, true
}
