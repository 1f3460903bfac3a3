package wasm

import "fmt"

// ValidationError reports a structural or type error in an assembled module.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid module: " + e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks module structure (export indices in range, export names
// unique) and type-checks every function body against its declared results.
// A module must validate before it is serialized.
func Validate(m *Module) error {
	seen := make(map[string]bool, len(m.Exports))
	for _, exp := range m.Exports {
		if seen[exp.Name] {
			return validationErrorf("duplicate export name %q", exp.Name)
		}
		seen[exp.Name] = true
		if exp.FuncIndex < 0 || exp.FuncIndex >= len(m.Funcs) {
			return validationErrorf("export %q references function %d of %d", exp.Name, exp.FuncIndex, len(m.Funcs))
		}
	}
	for _, fn := range m.Funcs {
		if err := typecheckFunc(fn); err != nil {
			return err
		}
	}
	return nil
}

// typeStack is the abstract operand stack used to type-check a body.
// unreachable is set once control definitely leaves the function; anything
// after that point is not checked further.
type typeStack struct {
	vals        []ValType
	unreachable bool
}

func (ts *typeStack) push(v ValType) {
	ts.vals = append(ts.vals, v)
}

func (ts *typeStack) pop() (ValType, bool) {
	if len(ts.vals) == 0 {
		return 0, false
	}
	v := ts.vals[len(ts.vals)-1]
	ts.vals = ts.vals[:len(ts.vals)-1]
	return v, true
}

func typecheckFunc(fn *Func) error {
	ts := &typeStack{}
	if fn.Body != nil {
		for _, in := range fn.Body.Body {
			if err := typecheckInstr(fn, in, ts); err != nil {
				return err
			}
		}
	}
	if ts.unreachable {
		return nil
	}
	if len(ts.vals) != len(fn.Results) {
		return validationErrorf("function %q: body leaves %d values on the stack, result type wants %d",
			fn.Name, len(ts.vals), len(fn.Results))
	}
	for i, want := range fn.Results {
		if ts.vals[i] != want {
			return validationErrorf("function %q: result %d is %s, want %s", fn.Name, i, ts.vals[i], want)
		}
	}
	return nil
}

func typecheckInstr(fn *Func, in Instruction, ts *typeStack) error {
	switch in := in.(type) {
	case *I32Const:
		ts.push(I32)
	case *Block:
		for _, child := range in.Body {
			if err := typecheckInstr(fn, child, ts); err != nil {
				return err
			}
		}
	case *Return:
		if in.Value != nil {
			if err := typecheckInstr(fn, in.Value, ts); err != nil {
				return err
			}
		}
		if !ts.unreachable {
			for i := len(fn.Results) - 1; i >= 0; i-- {
				got, ok := ts.pop()
				if !ok {
					return validationErrorf("function %q: return needs %s but the stack is empty", fn.Name, fn.Results[i])
				}
				if got != fn.Results[i] {
					return validationErrorf("function %q: return needs %s, found %s", fn.Name, fn.Results[i], got)
				}
			}
		}
		ts.unreachable = true
	case nil:
		return validationErrorf("function %q: nil instruction", fn.Name)
	default:
		return validationErrorf("function %q: unknown instruction %T", fn.Name, in)
	}
	return nil
}
