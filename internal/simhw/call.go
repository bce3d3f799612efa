package simhw

import (
	"fmt"
	"strings"
)

// Call is one recorded hardware or platform call.
type Call struct {
	// Name is "<target>.<method>", e.g. "display.SetComposition".
	Name string

	// Args holds the call arguments in order.
	Args []any
}

// String renders the call as name(arg, ...).
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Int returns argument i as an int32, or 0 when it is not one.
func (c Call) Int(i int) int32 {
	if i >= len(c.Args) {
		return 0
	}
	v, _ := c.Args[i].(int32)
	return v
}

// callLog is an append-only call recorder.
type callLog struct {
	calls []Call
}

func (l *callLog) record(name string, args ...any) {
	l.calls = append(l.calls, Call{Name: name, Args: args})
}

func (l *callLog) snapshot() []Call {
	out := make([]Call, len(l.calls))
	copy(out, l.calls)
	return out
}

func (l *callLog) named(name string) []Call {
	var out []Call
	for _, c := range l.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (l *callLog) reset() {
	l.calls = nil
}
