package textedit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplice(t *testing.T) {
	for _, c := range []struct {
		text       string
		start, end int
		insert     string
		want       string
	}{
		{"hello", 0, 0, "say ", "say hello"},
		{"hello", 5, 5, "!", "hello!"},
		{"hello", 1, 4, "ipp", "hippo"},
		{"hello", 0, 5, "", ""},
		{"", 0, 0, "x", "x"},
	} {
		got, err := Splice([]byte(c.text), c.start, c.end, []byte(c.insert))
		if err != nil {
			t.Errorf("Splice(%q, %d, %d, %q): %v", c.text, c.start, c.end, c.insert, err)
			continue
		}
		if string(got) != c.want {
			t.Errorf("Splice(%q, %d, %d, %q): got %q want %q",
				c.text, c.start, c.end, c.insert, got, c.want)
		}
	}
}

func TestSpliceRange(t *testing.T) {
	for _, c := range []struct{ start, end int }{
		{-1, 0},
		{3, 2},
		{0, 6},
		{6, 6},
	} {
		_, err := Splice([]byte("hello"), c.start, c.end, nil)
		if !errors.Is(err, ErrRange) {
			t.Errorf("Splice [%d,%d): got %v want ErrRange", c.start, c.end, err)
		}
	}
}

func TestSpliceDoesNotAlias(t *testing.T) {
	text := []byte("abcdef")
	got, err := Splice(text, 2, 4, []byte("XY"))
	if err != nil {
		t.Fatal(err)
	}
	got[0] = '!'
	if string(text) != "abcdef" {
		t.Errorf("input modified: %q", text)
	}
}

func TestEditsRoundTrip(t *testing.T) {
	cases := [][2]string{
		{"", "hello"},
		{"hello", ""},
		{"hello", "hello"},
		{"function f() {}", "function golf() {}"},
		{"let x = 1;\nlet y = 2;\n", "let x = 1;\nlet mid = 0;\nlet y = 2;\n"},
		{"aaa bbb ccc", "aaa ccc"},
		{"abc", "xyz"},
	}
	for _, c := range cases {
		from, to := []byte(c[0]), []byte(c[1])
		edits := Edits(from, to)
		got, err := Apply(from, edits)
		if err != nil {
			t.Errorf("Apply(%q -> %q): %v", c[0], c[1], err)
			continue
		}
		if diff := cmp.Diff(string(to), string(got)); diff != "" {
			t.Errorf("round trip %q -> %q (-want +got):\n%s", c[0], c[1], diff)
		}
	}
}

func TestEditsOffsetsReferenceFrom(t *testing.T) {
	from := []byte("abcdef")
	to := []byte("abXcdYef")
	for _, e := range Edits(from, to) {
		if e.Start < 0 || e.End > len(from) || e.Start > e.End {
			t.Errorf("edit [%d,%d) out of range of from", e.Start, e.End)
		}
	}
}
