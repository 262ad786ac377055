// Package script parses and replays DynamicArray operation scripts.
//
// A script holds one operation per line:
//
//	push <value>
//	insert <index> <value>
//	prepend <value>
//	pop
//	delete <index>
//	remove <value>
//	find <value>
//	at <index>
//
// Blank lines and lines starting with # are ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pavanmanishd/dynarray"
)

// Op is a parsed script line.
type Op struct {
	Line int    // 1-based line number in the script
	Name string // operation name, e.g. "push"
	Args []int
}

func (o Op) String() string {
	var sb strings.Builder
	sb.WriteString(o.Name)
	for _, a := range o.Args {
		fmt.Fprintf(&sb, " %d", a)
	}
	return sb.String()
}

// arity is the argument count of each operation.
var arity = map[string]int{
	"push":    1,
	"insert":  2,
	"prepend": 1,
	"pop":     0,
	"delete":  1,
	"remove":  1,
	"find":    1,
	"at":      1,
}

// Parse reads ops from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		name := strings.ToLower(fields[0])
		n, ok := arity[name]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q", line, fields[0])
		}
		if len(fields)-1 != n {
			return nil, fmt.Errorf("line %d: %s takes %d argument(s), got %d", line, name, n, len(fields)-1)
		}
		op := Op{Line: line, Name: name}
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad argument %q: %w", line, f, err)
			}
			op.Args = append(op.Args, v)
		}
		ops = append(ops, op)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// Step is the outcome of applying one Op.
type Step struct {
	Op       Op
	Result   string // value produced by the op, empty for pure mutations
	Err      error  // error returned by the op, if any
	Size     int    // size after the op
	Capacity int    // capacity after the op
}

func (s Step) String() string {
	outcome := "ok"
	switch {
	case s.Err != nil:
		outcome = "error: " + s.Err.Error()
	case s.Result != "":
		outcome = s.Result
	}
	return fmt.Sprintf("%d: %s -> %s size=%d cap=%d", s.Op.Line, s.Op, outcome, s.Size, s.Capacity)
}

// Apply runs ops against a in order. Operation errors are recorded in the
// returned steps and do not stop the replay.
func Apply(a *dynarray.DynamicArray[int], ops []Op) []Step {
	steps := make([]Step, 0, len(ops))
	for _, op := range ops {
		st := Step{Op: op}
		switch op.Name {
		case "push":
			a.Push(op.Args[0])
		case "insert":
			st.Err = a.Insert(op.Args[0], op.Args[1])
		case "prepend":
			a.Prepend(op.Args[0])
		case "pop":
			var v int
			v, st.Err = a.Pop()
			if st.Err == nil {
				st.Result = strconv.Itoa(v)
			}
		case "delete":
			st.Err = a.Delete(op.Args[0])
		case "remove":
			st.Result = strconv.FormatBool(a.Remove(op.Args[0]))
		case "find":
			st.Result = strconv.Itoa(a.Find(op.Args[0]))
		case "at":
			var v int
			v, st.Err = a.At(op.Args[0])
			if st.Err == nil {
				st.Result = strconv.Itoa(v)
			}
		}
		st.Size = a.Size()
		st.Capacity = a.Capacity()
		steps = append(steps, st)
	}
	return steps
}

// Run parses the script in r and applies it to a.
func Run(r io.Reader, a *dynarray.DynamicArray[int]) ([]Step, error) {
	ops, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Apply(a, ops), nil
}
