package core

// Args holds the actual arguments of one call, in declaration order.
type Args []any

// ArgAt returns argument i as a T. The proxy and the builder agree on
// parameter types, so a wrong T is a programmer error and panics.
func ArgAt[T any](args Args, i int) T {
	if args[i] == nil {
		var zero T

		return zero
	}

	val, ok := args[i].(T)
	if !ok {
		panic(errorf("argument %d is %T, not %T", i, args[i], *new(T)))
	}

	return val
}

type actionKind int

const (
	actionDefaultValue actionKind = iota
	actionFixedValue
	actionClonedValue
	actionClosure
	actionExplicitFailure
)

// String names the action in trace output.
func (k actionKind) String() string {
	switch k {
	case actionFixedValue:
		return "return"
	case actionClonedValue:
		return "return-clone"
	case actionClosure:
		return "call"
	case actionExplicitFailure:
		return "panic"
	default:
		return "return-default"
	}
}

// action is what consuming a call spec does. respond either returns the
// result or panics with the declared value.
type action struct {
	kind    actionKind
	respond func(args Args) any
}

// cloner is implemented by results that need a fresh copy per consumption.
type cloner[R any] interface {
	Clone() R
}

func clonedValue[R any](value R) action {
	return action{
		kind: actionClonedValue,
		respond: func(Args) any {
			if c, ok := any(value).(cloner[R]); ok {
				return c.Clone()
			}

			return value
		},
	}
}

func closureAction[R any](fn func(args Args) R) action {
	return action{
		kind:    actionClosure,
		respond: func(args Args) any { return fn(args) },
	}
}

func defaultValue[R any]() action {
	return action{
		kind: actionDefaultValue,
		respond: func(Args) any {
			var zero R

			return zero
		},
	}
}

func explicitFailure(value any) action {
	return action{
		kind:    actionExplicitFailure,
		respond: func(Args) any { panic(value) },
	}
}

func fixedValue[R any](value R) action {
	return action{
		kind:    actionFixedValue,
		respond: func(Args) any { return value },
	}
}
