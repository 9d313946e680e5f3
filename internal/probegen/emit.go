package probegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Header starts every generated file.
const Header = "// Code generated by probegen. DO NOT EDIT."

// render writes the glue for targets as a formatted Go file. Problems
// with single fields are reported to r.
func render(r *reporter, idx *pkgIndex, pkgName string, targets []*target) ([]byte, error) {
	e := newEmitter(idx)
	var body bytes.Buffer
	done := make(map[string]bool)
	for _, t := range targets {
		switch t.kind {
		case kindStruct:
			e.writeStruct(r, &body, t.file, t.name, t.fields, t.dirs.transparent.IsValid())
		case kindEnum:
			e.writeEnum(&body, t)
		case kindSum:
			for _, v := range t.variants {
				// A variant marked //probe:generate gets its own glue.
				if _, own := idx.targets[v.name]; own || done[v.name] {
					continue
				}
				done[v.name] = true
				e.writeStruct(r, &body, v.file, v.name, v.fields, v.transparent.IsValid())
			}
			e.writeSum(&body, t)
		}
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "%s\n\npackage %s\n\n", Header, pkgName)
	e.writeImports(&out)
	out.Write(body.Bytes())
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting generated code for package %s", pkgName)
	}
	return src, nil
}

func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func (e *emitter) writeImports(w *bytes.Buffer) {
	var std, other []string
	for p := range e.imports {
		if isStdlib(p) {
			std = append(std, p)
		} else {
			other = append(other, p)
		}
	}
	sort.Strings(std)
	sort.Strings(other)

	spec := func(p string) string {
		if name := e.imports[p]; name != guessName(p) {
			return name + " " + strconv.Quote(p)
		}
		return strconv.Quote(p)
	}
	if len(std)+len(other) == 1 {
		fmt.Fprintf(w, "import %s\n\n", spec(append(std, other...)[0]))
		return
	}
	w.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(w, "\t%s\n", spec(p))
	}
	if len(std) > 0 && len(other) > 0 {
		w.WriteString("\n")
	}
	for _, p := range other {
		fmt.Fprintf(w, "\t%s\n", spec(p))
	}
	w.WriteString(")\n\n")
}

// forward calls a method on a Prober expression.
func forward(expr, call string) string {
	if strings.HasPrefix(expr, "&") {
		expr = "(" + expr + ")"
	}
	return expr + "." + call
}

func (e *emitter) writeStruct(r *reporter, w *bytes.Buffer, file *ast.File, name string, fields []field, transparent bool) {
	exprs := make([]string, 0, len(fields))
	for _, f := range fields {
		ptr, val := "&v."+f.name, "v."+f.name
		x, err := e.probeExpr(file, f.typ, ptr, val, f.attrs, 0)
		if err != nil {
			r.errorf(f.pos, "%s", err)
			continue
		}
		exprs = append(exprs, x)
	}
	if len(exprs) != len(fields) {
		return
	}

	if transparent {
		x := exprs[0]
		fmt.Fprintf(w, "func (v *%s) Probe(s probe.Surface, style *probe.Style) probe.Response {\n\treturn %s\n}\n\n",
			name, forward(x, "Probe(s, style)"))
		fmt.Fprintf(w, "func (v *%s) HasInner() bool { return probe.HasInner(%s) }\n\n", name, x)
		fmt.Fprintf(w, "func (v *%s) IterateInner(s probe.Surface, visit probe.Visit) {\n\tprobe.IterateInner(%s, s, visit)\n}\n\n", name, x)
		return
	}

	fmt.Fprintf(w, "func (v *%s) Probe(s probe.Surface, _ *probe.Style) probe.Response {\n", name)
	fmt.Fprintf(w, "\ts.WeakLabel(%q)\n\treturn probe.Response{}\n}\n\n", name)
	if len(fields) == 0 {
		fmt.Fprintf(w, "func (v *%s) HasInner() bool { return false }\n\n", name)
		fmt.Fprintf(w, "func (v *%s) IterateInner(probe.Surface, probe.Visit) {}\n\n", name)
		return
	}
	fmt.Fprintf(w, "func (v *%s) HasInner() bool { return true }\n\n", name)
	fmt.Fprintf(w, "func (v *%s) IterateInner(s probe.Surface, visit probe.Visit) {\n", name)
	for i, f := range fields {
		fmt.Fprintf(w, "\tvisit(%q, s, %s)\n", f.label, exprs[i])
	}
	w.WriteString("}\n\n")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func quoteAll(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = strconv.Quote(s)
	}
	return strings.Join(q, ", ")
}

// variantsOverride is the extra argument picking a fixed variant selector.
func variantsOverride(tags string) string {
	switch tags {
	case "inlined":
		return ".Inlined()"
	case "combobox":
		return ".ComboBox()"
	}
	return ""
}

func (e *emitter) writeEnum(w *bytes.Buffer, t *target) {
	names := make([]string, len(t.consts))
	values := make([]string, len(t.consts))
	for i, c := range t.consts {
		names[i], values[i] = c.label, c.name
	}
	base := lowerFirst(t.name)
	fmt.Fprintf(w, "var %sProbeNames = []string{%s}\n\n", base, quoteAll(names))
	fmt.Fprintf(w, "var %sProbeValues = []%s{%s}\n\n", base, t.name, strings.Join(values, ", "))
	fmt.Fprintf(w, "func (v *%s) Probe(s probe.Surface, style *probe.Style) probe.Response {\n", t.name)
	fmt.Fprintf(w, "\treturn probe.Enum(v, %sProbeNames, %sProbeValues)%s.Probe(s, style)\n}\n\n",
		base, base, variantsOverride(t.dirs.tags))
}

func (e *emitter) writeSum(w *bytes.Buffer, t *target) {
	if len(t.variants) == 0 {
		return
	}
	base := lowerFirst(t.name)
	wrapper := t.name + "Probe"
	names := make([]string, len(t.variants))
	for i, v := range t.variants {
		names[i] = v.label
	}

	fmt.Fprintf(w, "var %sProbeNames = []string{%s}\n\n", base, quoteAll(names))
	fmt.Fprintf(w, "// %s edits a %s, which is one of its variants.\n", wrapper, t.name)
	fmt.Fprintf(w, "type %s struct{ v *%s }\n\n", wrapper, t.name)
	fmt.Fprintf(w, "// Probe%s returns the editor of v.\n", t.name)
	fmt.Fprintf(w, "func Probe%s(v *%s) %s { return %s{v} }\n\n", t.name, t.name, wrapper, wrapper)

	// Constructor of a freshly picked variant.
	fmt.Fprintf(w, "func new%sVariant(i int) %s {\n", t.name, t.name)
	if len(t.variants) > 1 {
		w.WriteString("\tswitch i {\n")
		for i, v := range t.variants[1:] {
			fmt.Fprintf(w, "\tcase %d:\n\t\treturn %s\n", i+1, newVariant(v))
		}
		w.WriteString("\t}\n")
	}
	fmt.Fprintf(w, "\treturn %s\n}\n\n", newVariant(t.variants[0]))

	fmt.Fprintf(w, "func (p %s) Probe(s probe.Surface, style *probe.Style) probe.Response {\n", wrapper)
	w.WriteString("\tvar resp probe.Response\n")
	fmt.Fprintf(w, "\tif *p.v == nil {\n\t\t*p.v = new%sVariant(0)\n\t\tresp.Changed = true\n\t}\n", t.name)
	w.WriteString("\tcurrent := 0\n")
	if len(t.variants) > 1 {
		w.WriteString("\tswitch (*p.v).(type) {\n")
		for i, v := range t.variants[1:] {
			fmt.Fprintf(w, "\tcase *%s:\n\t\tcurrent = %d\n", v.name, i+1)
		}
		w.WriteString("\t}\n")
	}
	w.WriteString("\ts.Horizontal(func(s probe.Surface) {\n")
	override := ""
	switch t.dirs.tags {
	case "inlined":
		override = ", probe.VariantsInlined"
	case "combobox":
		override = ", probe.VariantsComboBox"
	}
	fmt.Fprintf(w, "\t\tpicked, changed := probe.SelectVariant(s, style, %sProbeNames, current%s)\n", base, override)
	fmt.Fprintf(w, "\t\tif changed {\n\t\t\t*p.v = new%sVariant(picked)\n\t\t\tresp.Changed = true\n\t\t\treturn\n\t\t}\n", t.name)
	var inline []string
	for _, v := range t.variants {
		if v.transparent.IsValid() {
			inline = append(inline, v.name)
		}
	}
	if len(inline) > 0 {
		// Transparent variants show their single field next to the selector.
		w.WriteString("\t\tswitch x := (*p.v).(type) {\n")
		for _, name := range inline {
			fmt.Fprintf(w, "\t\tcase *%s:\n\t\t\tresp = resp.Or(x.Probe(s, style))\n", name)
		}
		w.WriteString("\t\t}\n")
	}
	w.WriteString("\t})\n\treturn resp\n}\n\n")

	fmt.Fprintf(w, "func (p %s) variant() probe.Prober {\n\tswitch x := (*p.v).(type) {\n", wrapper)
	for _, v := range t.variants {
		fmt.Fprintf(w, "\tcase *%s:\n\t\treturn x\n", v.name)
	}
	w.WriteString("\t}\n\treturn nil\n}\n\n")
	fmt.Fprintf(w, "func (p %s) HasInner() bool { return probe.HasInner(p.variant()) }\n\n", wrapper)
	fmt.Fprintf(w, "func (p %s) IterateInner(s probe.Surface, visit probe.Visit) {\n\tprobe.IterateInner(p.variant(), s, visit)\n}\n\n", wrapper)
}

func newVariant(v variant) string {
	if v.hasDefault {
		return "Default" + v.name + "()"
	}
	return "&" + v.name + "{}"
}
