package encode

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates indented source lines. Errors are sticky; callers check
// Err once at the end.
type Writer struct {
	buf    bytes.Buffer
	indent int
	depth  int
	err    error
}

func NewWriter() *Writer {
	return &Writer{indent: 2}
}

func (w *Writer) Line(format string, args ...any) {
	if w.err != nil {
		return
	}
	pad := strings.Repeat(" ", w.indent*w.depth)
	_, w.err = fmt.Fprintf(&w.buf, "%s%s\n", pad, fmt.Sprintf(format, args...))
}

func (w *Writer) Indent() { w.depth++ }

func (w *Writer) Dedent() {
	if w.depth > 0 {
		w.depth--
	}
}

func (w *Writer) String() string { return w.buf.String() }

func (w *Writer) Err() error { return w.err }

// EnumSource renders an enum declaration with the given members.
func EnumSource(name string, members ...string) string {
	w := NewWriter()
	w.Line("enum %s {", name)
	w.Indent()
	for i, m := range members {
		sep := ","
		if i == len(members)-1 {
			sep = ""
		}
		w.Line("%s%s", m, sep)
	}
	w.Dedent()
	w.Line("}")
	return w.String()
}

// FunctionSource renders a function declaration whose body holds the given
// statement lines.
func FunctionSource(name string, params []string, body ...string) string {
	w := NewWriter()
	w.Line("function %s(%s) {", name, strings.Join(params, ", "))
	w.Indent()
	for _, ln := range body {
		w.Line("%s", ln)
	}
	w.Dedent()
	w.Line("}")
	return w.String()
}

// MethodSource renders a method declaration for splicing into a class body.
func MethodSource(name string, params []string, body ...string) string {
	w := NewWriter()
	w.Line("%s(%s) {", name, strings.Join(params, ", "))
	w.Indent()
	for _, ln := range body {
		w.Line("%s", ln)
	}
	w.Dedent()
	w.Line("}")
	return w.String()
}
