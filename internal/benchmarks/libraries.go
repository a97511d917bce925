package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"

	"brieftools.io/diff/textdiff"
)

type Impl struct {
	Name string
	Diff func(base, candidate string) string
}

var Impls = []Impl{
	{
		Name: "brieftools",
		Diff: func(base, candidate string) string {
			return textdiff.Unified(base, candidate)
		},
	},
	{
		Name: "brieftools-ignorews",
		Diff: func(base, candidate string) string {
			return textdiff.Unified(base, candidate, textdiff.IgnoreTrailingWhitespace())
		},
	},
	{
		Name: "go-internal",
		Diff: func(base, candidate string) string {
			return string(gointernal.Diff("base", []byte(base), "candidate", []byte(candidate)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(base, candidate string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(base, candidate)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var sb strings.Builder
			for _, diff := range diffs {
				var prefix string
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					sb.WriteString(prefix)
					sb.WriteString(line)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "godebug",
		Diff: func(base, candidate string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return godebug.Diff(base, candidate)
		},
	},
	{
		Name: "mb0",
		Diff: func(base, candidate string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: bytes.SplitAfter([]byte(base), []byte("\n")),
				y: bytes.SplitAfter([]byte(candidate), []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			a, b := 0, 0
			for _, ch := range changes {
				for a < ch.A {
					buf.WriteString(" ")
					buf.Write(d.x[a])
					a++
					b++
				}
				for i := range ch.Del {
					buf.WriteString("-")
					buf.Write(d.x[ch.A+i])
					a++
				}
				for i := range ch.Ins {
					buf.WriteString("+")
					buf.Write(d.y[ch.B+i])
					b++
				}
			}
			for a < len(d.x) {
				buf.WriteString(" ")
				buf.Write(d.x[a])
				a++
			}
			return buf.String()
		},
	},
	{
		Name: "udiff",
		Diff: func(base, candidate string) string {
			return udiff.Unified("base", "candidate", base, candidate)
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
