package probegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"path"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	probePkg = "github.com/go-theft-auto/probe"
	guiPkg   = "github.com/go-theft-auto/probe/gui"
)

var integerTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
}

var floatTypes = map[string]bool{"float32": true, "float64": true}

// knownTypes are imported types with a ready made editor, taking a
// pointer to the value.
var knownTypes = map[string]string{
	guiPkg + ".Vec2":                           "probe.Vec2Of",
	guiPkg + ".Rect":                           "probe.RectOf",
	guiPkg + ".Style":                          "probe.GUIStyle",
	"github.com/lucasb-eyer/go-colorful.Color": "probe.Color",
	"image/color.RGBA":                         "probe.RGBA8",
	"image/color.NRGBA":                        "probe.NRGBA8",
	"time.Duration":                            "probe.Number",
}

// basicOf returns the predeclared type t is, or is defined as in this
// package, or "".
func (idx *pkgIndex) basicOf(t ast.Expr) string {
	seen := make(map[string]bool)
	for {
		id, ok := t.(*ast.Ident)
		if !ok {
			return ""
		}
		ts, local := idx.types[id.Name]
		if !local {
			if types.Universe.Lookup(id.Name) == nil {
				return ""
			}
			return id.Name
		}
		if seen[id.Name] || ts.TypeParams != nil {
			return ""
		}
		seen[id.Name] = true
		t = ts.Type
	}
}

func (idx *pkgIndex) isInteger(t ast.Expr) bool { return integerTypes[idx.basicOf(t)] }
func (idx *pkgIndex) isNumber(t ast.Expr) bool {
	b := idx.basicOf(t)
	return integerTypes[b] || floatTypes[b]
}

// hasProbeMethod reports whether a type declared in this package has a
// Probe method, written by hand or generated.
func (idx *pkgIndex) hasProbeMethod(name string) bool {
	if t, ok := idx.targets[name]; ok && t.kind != kindSum {
		return true
	}
	return idx.methods[name]["Probe"]
}

// emitter builds the expressions of one output file and tracks the
// imports they need.
type emitter struct {
	idx     *pkgIndex
	imports map[string]string // path to name
}

func newEmitter(idx *pkgIndex) *emitter {
	return &emitter{idx: idx, imports: map[string]string{probePkg: "probe"}}
}

// importOf resolves the package a qualified identifier in file refers to.
func (e *emitter) importOf(file *ast.File, pkg *ast.Ident) (string, error) {
	if e.idx.info != nil {
		if pn, ok := e.idx.info.Uses[pkg].(*types.PkgName); ok {
			return pn.Imported().Path(), nil
		}
	}
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := guessName(p)
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == pkg.Name {
			return p, nil
		}
	}
	return "", errors.Newf("unknown package `%s`", pkg.Name)
}

// guessName is the package name of an import path by convention: the
// last element without a go- prefix or a version suffix.
func guessName(p string) string {
	base := path.Base(p)
	if len(base) > 1 && base[0] == 'v' && strings.Trim(base[1:], "0123456789") == "" {
		base = path.Base(path.Dir(p))
	}
	base = strings.TrimPrefix(base, "go-")
	return strings.ReplaceAll(base, "-", "")
}

// use records the imports of every qualified identifier in x.
func (e *emitter) use(file *ast.File, x ast.Node) error {
	var err error
	ast.Inspect(x, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok || err != nil {
			return err == nil
		}
		pkg, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		if _, local := e.idx.types[pkg.Name]; local {
			return true
		}
		p, ierr := e.importOf(file, pkg)
		if ierr != nil {
			// A selector on a value, e.g. cfg.Field.
			return true
		}
		if have, ok := e.imports[p]; ok && have != pkg.Name {
			err = errors.Newf("package %q is imported as both `%s` and `%s`", p, have, pkg.Name)
			return false
		}
		for other, name := range e.imports {
			if name == pkg.Name && other != p {
				err = errors.Newf("`%s` refers to both %q and %q", name, other, p)
				return false
			}
		}
		e.imports[p] = pkg.Name
		return false
	})
	return err
}

// qualified returns the import path and name of a qualified type, or "".
func (e *emitter) qualified(file *ast.File, t ast.Expr) string {
	if idx, ok := t.(*ast.IndexListExpr); ok {
		t = idx.X
	}
	sel, ok := t.(*ast.SelectorExpr)
	if !ok {
		return ""
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok {
		return ""
	}
	p, err := e.importOf(file, pkg)
	if err != nil {
		return ""
	}
	return p + "." + sel.Sel.Name
}

// typeString prints t as written and records its imports.
func (e *emitter) typeString(file *ast.File, t ast.Expr) (string, error) {
	if err := e.use(file, t); err != nil {
		return "", err
	}
	return types.ExprString(t), nil
}

// userExpr checks an expression written in a tag and records its imports.
func (e *emitter) userExpr(file *ast.File, attr, src string) (string, error) {
	x, err := parser.ParseExpr(src)
	if err != nil {
		return "", errors.Newf("malformed `%s` expression %q", attr, src)
	}
	if err := e.use(file, x); err != nil {
		return "", err
	}
	return types.ExprString(x), nil
}

func paren(val string) string {
	if strings.HasPrefix(val, "*") {
		return "(" + val + ")"
	}
	return val
}

// probeExpr returns an expression of a probe.Prober editing a value of
// type t. ptr is an expression of type *t and val one of type t.
func (e *emitter) probeExpr(file *ast.File, t ast.Expr, ptr, val string, a fieldAttrs, depth int) (string, error) {
	if a.kind != "" {
		return e.attrExpr(file, t, ptr, val, a, depth)
	}
	if a.step != "" {
		if !e.idx.isNumber(t) {
			return "", errors.Newf("attribute `step` needs a number, not `%s`", types.ExprString(t))
		}
		step, err := e.userExpr(file, "step", a.step)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("probe.Number(%s).Step(%s)", ptr, step), nil
	}

	switch t := t.(type) {
	case *ast.Ident:
		return e.namedExpr(t, ptr)
	case *ast.SelectorExpr:
		q := e.qualified(file, t)
		if q == "" {
			return "", errors.Newf("unknown package `%s`", types.ExprString(t.X))
		}
		if fn := knownTypes[q]; fn != "" {
			return fmt.Sprintf("%s(%s)", fn, ptr), nil
		}
		if e.implementsProber(t) {
			return ptr, nil
		}
		return "", unsupported(t)
	case *ast.StarExpr:
		if il, ok := t.X.(*ast.IndexListExpr); ok && e.qualified(file, il) == "github.com/cockroachdb/swiss.Map" && len(il.Indices) == 2 {
			return e.mapExpr(file, "probe.SwissMap", val, il.Indices[0], il.Indices[1], depth)
		}
		elem, err := e.elemFunc(file, t.X, depth)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("probe.Option(%s, %s)", ptr, elem), nil
	case *ast.ArrayType:
		elem, err := e.elemFunc(file, t.Elt, depth)
		if err != nil {
			return "", err
		}
		if t.Len != nil {
			return fmt.Sprintf("probe.Array(%s[:], %s)", paren(val), elem), nil
		}
		return fmt.Sprintf("probe.Slice(%s, %s, nil)", ptr, elem), nil
	case *ast.MapType:
		return e.mapExpr(file, "probe.Map", ptr, t.Key, t.Value, depth)
	}
	return "", unsupported(t)
}

func unsupported(t ast.Expr) error {
	return errors.Newf("unsupported field type `%s`", types.ExprString(t))
}

func (e *emitter) namedExpr(t *ast.Ident, ptr string) (string, error) {
	if target, ok := e.idx.targets[t.Name]; ok && target.kind == kindSum {
		return fmt.Sprintf("Probe%s(%s)", t.Name, ptr), nil
	}
	if e.idx.hasProbeMethod(t.Name) {
		return ptr, nil
	}
	switch b := e.idx.basicOf(t); {
	case b == "string" && t.Name == "string":
		return fmt.Sprintf("probe.String(%s)", ptr), nil
	case b == "bool" && t.Name == "bool":
		return fmt.Sprintf("probe.Bool(%s)", ptr), nil
	case integerTypes[b] || floatTypes[b]:
		return fmt.Sprintf("probe.Number(%s)", ptr), nil
	}
	return "", unsupported(t)
}

// implementsProber reports whether a pointer to an imported type has a
// Probe method. Without type information the type is trusted to have one.
func (e *emitter) implementsProber(t *ast.SelectorExpr) bool {
	if e.idx.info == nil {
		return true
	}
	obj := e.idx.info.Uses[t.Sel]
	if obj == nil {
		return true
	}
	ms := types.NewMethodSet(types.NewPointer(obj.Type()))
	return ms.Lookup(nil, "Probe") != nil
}

func (e *emitter) mapExpr(file *ast.File, fn, m string, key, value ast.Expr, depth int) (string, error) {
	keyType, err := e.typeString(file, key)
	if err != nil {
		return "", err
	}
	var codec string
	switch b := e.idx.basicOf(key); {
	case b == "string" && keyType == "string":
		codec = "probe.StringKeys()"
	case integerTypes[b]:
		codec = fmt.Sprintf("probe.IntKeys[%s]()", keyType)
	case b == "":
		codec = fmt.Sprintf("probe.TextKeys[%s]()", keyType)
	default:
		return "", errors.Newf("unsupported map key type `%s`", keyType)
	}
	elem, err := e.elemFunc(file, value, depth)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s, %s, %s, nil)", fn, m, codec, elem), nil
}

// elemFunc returns a func literal making the editor of one element.
func (e *emitter) elemFunc(file *ast.File, t ast.Expr, depth int) (string, error) {
	param := "e"
	if depth > 0 {
		param = fmt.Sprintf("e%d", depth)
	}
	typ, err := e.typeString(file, t)
	if err != nil {
		return "", err
	}
	body, err := e.probeExpr(file, t, param, "*"+param, fieldAttrs{}, depth+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("func(%s *%s) probe.Prober { return %s }", param, typ, body), nil
}

// attrExpr builds the editor picked by a field attribute.
func (e *emitter) attrExpr(file *ast.File, t ast.Expr, ptr, val string, a fieldAttrs, depth int) (string, error) {
	typ := types.ExprString(t)
	need := func(what string) error {
		return errors.Newf("attribute `%s` needs %s, not `%s`", a.kind, what, typ)
	}
	switch a.kind {
	case "with":
		fn, err := e.userExpr(file, "with", a.arg)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("probe.With(%s, %s)", ptr, fn), nil

	case "as":
		if a.arg == "angle" {
			switch e.idx.basicOf(t) {
			case "float64":
				return fmt.Sprintf("probe.Angle(%s)", ptr), nil
			case "float32":
				return fmt.Sprintf("probe.Angle32(%s)", ptr), nil
			}
			return "", need("a float32 or float64")
		}
		fn, err := e.userExpr(file, "as", a.arg)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", fn, ptr), nil

	case "range":
		if !e.idx.isNumber(t) {
			return "", need("a number")
		}
		lo, hi, ok := parseRange(a.arg)
		if !ok {
			return "", errors.Newf("malformed range %q, want lo..hi", a.arg)
		}
		var expr string
		switch {
		case lo == "":
			hi, err := e.userExpr(file, "range", hi)
			if err != nil {
				return "", err
			}
			expr = fmt.Sprintf("probe.Number(%s).RangeTo(%s)", ptr, hi)
		case hi == "":
			lo, err := e.userExpr(file, "range", lo)
			if err != nil {
				return "", err
			}
			expr = fmt.Sprintf("probe.Number(%s).RangeFrom(%s)", ptr, lo)
		default:
			lo, err := e.userExpr(file, "range", lo)
			if err != nil {
				return "", err
			}
			hi, err := e.userExpr(file, "range", hi)
			if err != nil {
				return "", err
			}
			expr = fmt.Sprintf("probe.Number(%s).Range(%s, %s)", ptr, lo, hi)
		}
		if a.step != "" {
			step, err := e.userExpr(file, "step", a.step)
			if err != nil {
				return "", err
			}
			expr += fmt.Sprintf(".Step(%s)", step)
		}
		return expr, nil

	case "multiline":
		if e.idx.basicOf(t) != "string" || typ != "string" {
			return "", need("a string")
		}
		return fmt.Sprintf("probe.Multiline(%s)", ptr), nil

	case "toggle":
		if e.idx.basicOf(t) != "bool" || typ != "bool" {
			return "", need("a bool")
		}
		return fmt.Sprintf("probe.Toggle(%s)", ptr), nil

	case "frozen":
		switch t.(type) {
		case *ast.ArrayType, *ast.MapType:
		default:
			return "", need("a slice, array or map")
		}
		expr, err := e.probeExpr(file, t, ptr, val, fieldAttrs{}, depth)
		if err != nil {
			return "", err
		}
		if at, ok := t.(*ast.ArrayType); ok && at.Len != nil {
			return expr, nil
		}
		return expr + ".Frozen()", nil

	case "rgb":
		switch typ {
		case "[3]float32":
			return fmt.Sprintf("probe.RGB(%s)", ptr), nil
		case "[3]uint8", "[3]byte":
			return fmt.Sprintf("probe.RGB8(%s)", ptr), nil
		}
		if e.qualified(file, t) == "github.com/lucasb-eyer/go-colorful.Color" {
			return fmt.Sprintf("probe.Color(%s)", ptr), nil
		}
		return "", need("[3]float32, [3]uint8 or colorful.Color")

	case "rgba", "rgba_unmultiplied":
		if typ == "[4]float32" {
			if a.kind == "rgba" {
				return fmt.Sprintf("probe.RGBA(%s)", ptr), nil
			}
			return fmt.Sprintf("probe.RGBAUnmultiplied(%s)", ptr), nil
		}
		if e.qualified(file, t) == "image/color.NRGBA" {
			return fmt.Sprintf("probe.NRGBA8(%s)", ptr), nil
		}
		return "", need("[4]float32 or color.NRGBA")

	case "rgba_premultiplied":
		if typ == "[4]float32" {
			return fmt.Sprintf("probe.RGBAPremultiplied(%s)", ptr), nil
		}
		if e.qualified(file, t) == "image/color.RGBA" {
			return fmt.Sprintf("probe.RGBA8(%s)", ptr), nil
		}
		return "", need("[4]float32 or color.RGBA")
	}
	return "", errors.AssertionFailedf("unhandled attribute %q", a.kind)
}
