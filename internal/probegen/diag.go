package probegen

import (
	"fmt"
	"go/token"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Diagnostic is a problem with a declaration, reported at its position.
type Diagnostic struct {
	Pos token.Position
	Msg string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Msg)
}

// Diagnostics is every problem found in a package. No code is generated
// for a package with diagnostics.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Error())
	}
	return b.String()
}

func (ds Diagnostics) sorted() Diagnostics {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i].Pos, ds[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return ds
}

// reporter collects diagnostics for one package.
type reporter struct {
	fset  *token.FileSet
	diags Diagnostics
}

func (r *reporter) errorf(pos token.Pos, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{Pos: r.fset.Position(pos), Msg: fmt.Sprintf(format, args...)})
}

func (r *reporter) err() error {
	if len(r.diags) == 0 {
		return nil
	}
	return errors.WithStack(r.diags.sorted())
}
