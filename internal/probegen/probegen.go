// Package probegen writes probe glue for Go types.
//
// A type whose doc comment has a //probe:generate line gets Probe,
// HasInner and IterateInner methods in <package>_probe.go next to it.
// Structs list their fields as children. Named integer types marked
// //probe:enum pick one of their constants. Interfaces marked
// //probe:variants=A,B are sum types over pointers to the listed
// structs and get a <Name>Probe wrapper.
//
// Fields are configured with a `probe:"..."` struct tag:
//
//	Health int        `probe:"range=0..100"`
//	Angle  float64    `probe:"as=angle"`
//	Tint   [3]float32 `probe:"rgb,name=tint color"`
//	Cache  []byte     `probe:"skip"`
//
// Problems are reported as Diagnostics with the position of the
// offending declaration and nothing is written for the package.
package probegen

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// Config configures Generate.
type Config struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
	// Tags are extra build tags.
	Tags   []string
	Logger *zap.Logger
}

// File is a generated source file.
type File struct {
	Path    string
	Content []byte
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo

// Generate loads the packages matching patterns and returns the glue file
// of every package with a type to generate. Nothing is returned if any
// package has a problem.
func Generate(ctx context.Context, cfg Config, patterns ...string) ([]File, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lcfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     cfg.Dir,
	}
	if len(cfg.Tags) > 0 {
		lcfg.BuildFlags = []string{"-tags=" + strings.Join(cfg.Tags, ",")}
	}
	pkgs, err := packages.Load(lcfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", strings.Join(patterns, " "))
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages match %s", strings.Join(patterns, " "))
	}

	var out []File
	var errs error
	for _, pkg := range pkgs {
		log := log.With(zap.String("package", pkg.PkgPath))
		var info *types.Info
		if len(pkg.TypeErrors) == 0 {
			info = pkg.TypesInfo
		} else {
			// The previous glue may be stale; generate from syntax alone.
			for _, terr := range pkg.TypeErrors {
				log.Debug("type error", zap.String("error", terr.Error()))
			}
			log.Info("package does not type check, imported types are trusted",
				zap.Int("errors", len(pkg.TypeErrors)))
		}
		if len(pkg.Syntax) == 0 {
			errs = errors.CombineErrors(errs, errors.Newf("package %s has no Go files", pkg.PkgPath))
			continue
		}

		var files []*ast.File
		for _, f := range pkg.Syntax {
			if !isGenerated(f) {
				files = append(files, f)
			}
		}
		content, ok, err := GenerateFiles(pkg.Fset, pkg.Name, files, info)
		if err != nil {
			errs = errors.CombineErrors(errs, err)
			continue
		}
		if !ok {
			log.Debug("nothing to generate")
			continue
		}
		path := filepath.Join(filepath.Dir(pkg.Fset.Position(files[0].Package).Filename), OutputName(pkg.Name))
		log.Info("generated", zap.String("file", path))
		out = append(out, File{Path: path, Content: content})
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// OutputName is the name of the glue file of a package.
func OutputName(pkgName string) string { return pkgName + "_probe.go" }

// GenerateFiles writes the glue for the files of one package. info may be
// nil, in which case imported types used as fields are assumed to have a
// Probe method. It reports false if no type asks for glue.
func GenerateFiles(fset *token.FileSet, pkgName string, files []*ast.File, info *types.Info) ([]byte, bool, error) {
	r := &reporter{fset: fset}
	idx := newIndex(fset, files, info)
	targets := idx.collect(r)
	if err := r.err(); err != nil {
		return nil, false, err
	}
	if len(targets) == 0 {
		return nil, false, nil
	}
	src, err := render(r, idx, pkgName, targets)
	if err := r.err(); err != nil {
		return nil, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return src, true, nil
}

func isGenerated(f *ast.File) bool {
	for _, c := range f.Comments {
		if c.Pos() > f.Package {
			break
		}
		for _, l := range c.List {
			if l.Text == Header {
				return true
			}
		}
	}
	return false
}
