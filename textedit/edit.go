// Package textedit provides byte-offset splicing of source text and
// derivation of minimal edits between two texts.
package textedit

import (
	"errors"
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ErrRange is returned when an edit's offsets fall outside the text or are
// inverted.
var ErrRange = errors.New("edit out of range")

// Edit replaces text[Start:End] with Text. Offsets are byte offsets into the
// text the edit was derived from.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Splice returns text with text[start:end] replaced by insert. The input
// slice is not modified.
func Splice(text []byte, start, end int, insert []byte) ([]byte, error) {
	if start < 0 || end < start || end > len(text) {
		return nil, fmt.Errorf("%w: [%d,%d) in text of %d bytes", ErrRange, start, end, len(text))
	}
	res := make([]byte, 0, len(text)-(end-start)+len(insert))
	res = append(res, text[:start]...)
	res = append(res, insert...)
	res = append(res, text[end:]...)
	return res, nil
}

// Edits computes the edits that turn from into to. Offsets of every edit are
// relative to from; apply them with Apply, which handles the offset shifting.
func Edits(from, to []byte) []Edit {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(from), string(to), false)
	var res []Edit
	off := 0
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			off += len(d.Text)
		case diffpatch.DiffDelete:
			e := Edit{Start: off, End: off + len(d.Text)}
			// fold an adjacent insert into a single replacement
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				e.Text = diffs[i+1].Text
				i++
			}
			res = append(res, e)
			off = e.End
		case diffpatch.DiffInsert:
			res = append(res, Edit{Start: off, End: off, Text: d.Text})
		}
	}
	return res
}

// Apply applies edits, whose offsets all reference text, in order.
func Apply(text []byte, edits []Edit) ([]byte, error) {
	shift := 0
	cur := text
	for _, e := range edits {
		next, err := Splice(cur, e.Start+shift, e.End+shift, []byte(e.Text))
		if err != nil {
			return nil, err
		}
		shift += len(e.Text) - (e.End - e.Start)
		cur = next
	}
	return cur, nil
}
