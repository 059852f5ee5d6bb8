package goscheme

// Env is one scope in the chain: the session global or a procedure
// activation. Set always writes into the current scope, so a name bound in
// an ancestor is shadowed locally rather than overwritten.
type Env struct {
	vars map[string]*Value
	env  *Env
}

func NewEnv(env *Env) *Env {
	return &Env{
		vars: make(map[string]*Value),
		env:  env,
	}
}

func (e *Env) Get(name string) (*Value, bool) {
	for ; e != nil; e = e.env {
		if v, ok := e.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (e *Env) Set(name string, v *Value) {
	e.vars[name] = v
}
