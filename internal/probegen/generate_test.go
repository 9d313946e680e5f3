package probegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// TestGenerate runs the generator on the input of each case, parsed as
// demo.go without type information.
func TestGenerate(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "generate":
				fset := token.NewFileSet()
				f, err := parser.ParseFile(fset, "demo.go", d.Input, parser.ParseComments)
				require.NoError(t, err)
				src, ok, err := GenerateFiles(fset, f.Name.Name, []*ast.File{f}, nil)
				if err != nil {
					return err.Error()
				}
				if !ok {
					return "nothing to generate"
				}
				return string(src)
			default:
				return "unknown command: " + d.Cmd
			}
		})
	})
}

func TestDiagnosticsAreSorted(t *testing.T) {
	fset := token.NewFileSet()
	src := `package demo

//probe:transparent
//probe:generate
type B struct {
	X, Y int
}

//probe:generate
//probe:tags=inlined
type A struct{}
`
	f, err := parser.ParseFile(fset, "demo.go", src, parser.ParseComments)
	require.NoError(t, err)
	_, _, err = GenerateFiles(fset, "demo", []*ast.File{f}, nil)

	// A is rejected while types are registered, B once its fields are read.
	var diags Diagnostics
	require.True(t, errors.As(err, &diags))
	require.Len(t, diags, 2)
	require.Equal(t, 3, diags[0].Pos.Line)
	require.Equal(t, 10, diags[1].Pos.Line)
	require.Equal(t, "demo.go:10:1: Tags may be specified only for enums", diags[1].Error())
}

func TestIsGenerated(t *testing.T) {
	fset := token.NewFileSet()
	gen, err := parser.ParseFile(fset, "a.go", Header+"\n\npackage demo\n", parser.ParseComments)
	require.NoError(t, err)
	require.True(t, isGenerated(gen))

	hand, err := parser.ParseFile(fset, "b.go", "package demo\n\n"+Header+"\n", parser.ParseComments)
	require.NoError(t, err)
	require.False(t, isGenerated(hand))
}
