package object

// Environment maps names to values and chains to the scope it was created in
type Environment struct {
	outer  *Environment
	values map[string]Object
}

// NewEnvironment creates an empty scope. outer is nil for the root scope.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		outer:  outer,
		values: make(map[string]Object),
	}
}

// Get looks name up in this scope and then in the enclosing ones
func (e *Environment) Get(name string) (Object, bool) {
	if value, ok := e.values[name]; ok {
		return value, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set binds name in this scope only; enclosing scopes are never written
func (e *Environment) Set(name string, value Object) Object {
	e.values[name] = value
	return value
}

func (e *Environment) Outer() *Environment {
	return e.outer
}
