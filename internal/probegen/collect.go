package probegen

import (
	"go/ast"
	"go/token"
	"go/types"
)

type targetKind int

const (
	kindStruct targetKind = iota
	kindEnum
	kindSum
)

// target is a type to write glue for.
type target struct {
	kind targetKind
	name string
	file *ast.File
	dirs directives

	fields   []field    // kindStruct
	consts   []constant // kindEnum
	variants []variant  // kindSum
}

type field struct {
	name  string // Go name, or the type name of an embedded field
	label string
	typ   ast.Expr
	attrs fieldAttrs
	pos   token.Pos
}

type constant struct {
	name  string
	label string
}

type variant struct {
	name        string
	label       string
	file        *ast.File
	transparent token.Pos
	fields      []field
	hasDefault  bool // a func Default<name>() is declared
}

// pkgIndex is what the generator knows about the declarations of one
// package.
type pkgIndex struct {
	fset    *token.FileSet
	files   []*ast.File
	info    *types.Info // nil when type checking was not possible
	types   map[string]*ast.TypeSpec
	fileOf  map[string]*ast.File
	methods map[string]map[string]bool // receiver base type, method names
	funcs   map[string]*ast.FuncDecl
	targets map[string]*target
}

func newIndex(fset *token.FileSet, files []*ast.File, info *types.Info) *pkgIndex {
	idx := &pkgIndex{
		fset:    fset,
		files:   files,
		info:    info,
		types:   make(map[string]*ast.TypeSpec),
		fileOf:  make(map[string]*ast.File),
		methods: make(map[string]map[string]bool),
		funcs:   make(map[string]*ast.FuncDecl),
		targets: make(map[string]*target),
	}
	for _, f := range files {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts := spec.(*ast.TypeSpec)
					idx.types[ts.Name.Name] = ts
					idx.fileOf[ts.Name.Name] = f
				}
			case *ast.FuncDecl:
				if d.Recv == nil {
					idx.funcs[d.Name.Name] = d
					continue
				}
				if base := receiverBase(d.Recv); base != "" {
					if idx.methods[base] == nil {
						idx.methods[base] = make(map[string]bool)
					}
					idx.methods[base][d.Name.Name] = true
				}
			}
		}
	}
	return idx
}

func receiverBase(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	t := recv.List[0].Type
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	switch t := t.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name
		}
	case *ast.IndexListExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name
		}
	}
	return ""
}

// typeDoc returns the doc comments of a type spec, including the doc of an
// ungrouped declaration.
func typeDoc(d *ast.GenDecl, ts *ast.TypeSpec) []*ast.CommentGroup {
	groups := []*ast.CommentGroup{ts.Doc}
	if !d.Lparen.IsValid() {
		groups = append(groups, d.Doc)
	}
	return groups
}

// collect finds every type marked //probe:generate.
func (idx *pkgIndex) collect(r *reporter) []*target {
	var out []*target
	for _, f := range idx.files {
		for _, decl := range f.Decls {
			d, ok := decl.(*ast.GenDecl)
			if !ok || d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				dirs := parseDirectives(r, typeDoc(d, ts)...)
				if !dirs.generate.IsValid() {
					continue
				}
				if t := idx.newTarget(r, f, ts, dirs); t != nil {
					idx.targets[t.name] = t
					out = append(out, t)
				}
			}
		}
	}
	// Fields are read once every target is known, so they can refer to
	// each other.
	for _, t := range out {
		idx.fill(r, t)
	}
	return out
}

func (idx *pkgIndex) newTarget(r *reporter, f *ast.File, ts *ast.TypeSpec, dirs directives) *target {
	t := &target{name: ts.Name.Name, file: f, dirs: dirs}
	if ts.TypeParams != nil {
		r.errorf(ts.Pos(), "generic type `%s` is not supported", t.name)
		return nil
	}
	if ts.Assign.IsValid() {
		r.errorf(ts.Pos(), "alias `%s` is not supported", t.name)
		return nil
	}

	switch ts.Type.(type) {
	case *ast.StructType:
		t.kind = kindStruct
		if dirs.tagsPos.IsValid() {
			r.errorf(dirs.tagsPos, "Tags may be specified only for enums")
			return nil
		}
	case *ast.InterfaceType:
		t.kind = kindSum
		if dirs.variants == nil {
			r.errorf(dirs.generate, "interface `%s` needs `//probe:variants=...`", t.name)
			return nil
		}
	case *ast.Ident:
		t.kind = kindEnum
		if !dirs.enum.IsValid() {
			r.errorf(dirs.generate, "`%s` needs `//probe:enum` to be generated", t.name)
			return nil
		}
		if !idx.isInteger(ts.Type) {
			r.errorf(dirs.enum, "enum `%s` must have an integer type", t.name)
			return nil
		}
	default:
		r.errorf(dirs.generate, "`//probe:generate` applies to structs, interfaces and named integer types")
		return nil
	}

	if dirs.enum.IsValid() && t.kind != kindEnum {
		r.errorf(dirs.enum, "`//probe:enum` applies to named integer types")
		return nil
	}
	if dirs.variants != nil && t.kind != kindSum {
		r.errorf(dirs.variantsPos, "`//probe:variants` applies to interfaces")
		return nil
	}
	if dirs.transparent.IsValid() && t.kind != kindStruct {
		r.errorf(dirs.transparent, "`//probe:transparent` applies to structs and variants")
		return nil
	}
	return t
}

func (idx *pkgIndex) fill(r *reporter, t *target) {
	ts := idx.types[t.name]
	switch t.kind {
	case kindStruct:
		t.fields = idx.structFields(r, ts.Type.(*ast.StructType), t.dirs.renameAll)
		if t.dirs.transparent.IsValid() && len(t.fields) != 1 {
			r.errorf(t.dirs.transparent, "Transparent struct must have exactly one non-skipped field")
		}
	case kindEnum:
		t.consts = idx.enumConsts(r, t)
		if len(t.consts) == 0 {
			r.errorf(ts.Pos(), "enum `%s` has no constants", t.name)
		}
	case kindSum:
		for _, name := range t.dirs.variants {
			if v, ok := idx.sumVariant(r, t, name); ok {
				t.variants = append(t.variants, v)
			}
		}
	}
}

func (idx *pkgIndex) structFields(r *reporter, st *ast.StructType, rename *renameCase) []field {
	var out []field
	for _, f := range st.Fields.List {
		attrs, ok := parseFieldTag(r, f.Tag)
		if !ok || attrs.skip {
			continue
		}
		names := f.Names
		if len(names) == 0 {
			if n := embeddedName(f.Type); n != "" {
				names = []*ast.Ident{ast.NewIdent(n)}
			}
		}
		for _, n := range names {
			if n.Name == "_" {
				continue
			}
			label := n.Name
			switch {
			case attrs.hasName:
				label = attrs.name
			case rename != nil:
				label = rename.apply(n.Name)
			}
			out = append(out, field{name: n.Name, label: label, typ: f.Type, attrs: attrs, pos: f.Pos()})
		}
	}
	return out
}

func embeddedName(t ast.Expr) string {
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	switch t := t.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	}
	return ""
}

// enumConsts lists the constants of an enum type in declaration order.
// Constants in a group without a type repeat the type above them.
func (idx *pkgIndex) enumConsts(r *reporter, t *target) []constant {
	var out []constant
	for _, f := range idx.files {
		for _, decl := range f.Decls {
			d, ok := decl.(*ast.GenDecl)
			if !ok || d.Tok != token.CONST {
				continue
			}
			var typ ast.Expr
			for _, spec := range d.Specs {
				vs := spec.(*ast.ValueSpec)
				if vs.Type != nil || len(vs.Values) > 0 {
					typ = vs.Type
				}
				id, ok := typ.(*ast.Ident)
				if !ok || id.Name != t.name {
					continue
				}
				doc := []*ast.CommentGroup{vs.Doc}
				if !d.Lparen.IsValid() {
					doc = append(doc, d.Doc)
				}
				dirs := parseDirectives(r, doc...)
				for _, n := range vs.Names {
					if n.Name == "_" {
						continue
					}
					out = append(out, constant{name: n.Name, label: dirs.label(n.Name, t.dirs.renameAll)})
				}
			}
		}
	}
	return out
}

func (idx *pkgIndex) sumVariant(r *reporter, t *target, name string) (variant, bool) {
	ts, ok := idx.types[name]
	if !ok {
		r.errorf(t.dirs.variantsPos, "unknown variant type `%s`", name)
		return variant{}, false
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		r.errorf(ts.Pos(), "variant `%s` of `%s` is not a struct", name, t.name)
		return variant{}, false
	}

	var doc []*ast.CommentGroup
	for _, decl := range idx.fileOf[name].Decls {
		if d, ok := decl.(*ast.GenDecl); ok && d.Tok == token.TYPE {
			for _, spec := range d.Specs {
				if spec == ts {
					doc = typeDoc(d, ts)
				}
			}
		}
	}
	dirs := parseDirectives(r, doc...)
	v := variant{
		name:        name,
		label:       dirs.label(name, t.dirs.renameAll),
		file:        idx.fileOf[name],
		transparent: dirs.transparent,
		fields:      idx.structFields(r, st, t.dirs.renameAll),
	}
	if fn, ok := idx.funcs["Default"+name]; ok {
		v.hasDefault = returnsPointerTo(fn, name)
		if !v.hasDefault {
			r.errorf(fn.Pos(), "`%s` must take no arguments and return *%s", fn.Name.Name, name)
		}
	}
	if v.transparent.IsValid() && len(v.fields) != 1 {
		r.errorf(v.transparent, "Transparent variant must have exactly one non-skipped field")
		return variant{}, false
	}
	return v, true
}

func returnsPointerTo(fn *ast.FuncDecl, name string) bool {
	res := fn.Type.Results
	if fn.Type.Params.NumFields() != 0 || res.NumFields() != 1 {
		return false
	}
	star, ok := res.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	id, ok := star.X.(*ast.Ident)
	return ok && id.Name == name
}
