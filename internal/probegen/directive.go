package probegen

import (
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

const directivePrefix = "//probe:"

// directives are the //probe: lines in the doc comment of a declaration.
type directives struct {
	generate    token.Pos
	renameAll   *renameCase
	transparent token.Pos
	tags        string
	tagsPos     token.Pos
	enum        token.Pos
	variants    []string
	variantsPos token.Pos
	name        string
	namePos     token.Pos
}

func parseDirectives(r *reporter, groups ...*ast.CommentGroup) directives {
	var d directives
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			text, ok := strings.CutPrefix(c.Text, directivePrefix)
			if !ok {
				continue
			}
			key, value, hasValue := strings.Cut(strings.TrimSpace(text), "=")
			pos := c.Slash
			switch key {
			case "generate":
				d.generate = pos
			case "transparent":
				d.transparent = pos
			case "enum":
				d.enum = pos
			case "rename_all":
				rc, ok := lookupCase(value)
				if !ok {
					r.errorf(pos, "unknown case %q for `rename_all`", value)
					continue
				}
				d.renameAll = &rc
			case "tags":
				if value != "inlined" && value != "combobox" {
					r.errorf(pos, "unknown tags %q, want inlined or combobox", value)
					continue
				}
				d.tags, d.tagsPos = value, pos
			case "variants":
				for _, v := range strings.Split(value, ",") {
					if v = strings.TrimSpace(v); v != "" {
						d.variants = append(d.variants, v)
					}
				}
				if len(d.variants) == 0 {
					r.errorf(pos, "`variants` needs at least one type")
				}
				d.variantsPos = pos
			case "name":
				if !hasValue || value == "" {
					r.errorf(pos, "directive `name` needs a value")
					continue
				}
				d.name, d.namePos = value, pos
			default:
				r.errorf(pos, "unknown directive `%s%s`", directivePrefix, key)
			}
		}
	}
	return d
}

// label returns the label of an identifier declared with these directives.
func (d directives) label(ident string, rename *renameCase) string {
	if d.name != "" {
		return d.name
	}
	if rename != nil {
		return rename.apply(ident)
	}
	return ident
}

// fieldKinds pick the editor of a field. A field has at most one.
var fieldKinds = map[string]bool{
	"with":               true,
	"as":                 true,
	"range":              true,
	"multiline":          true,
	"toggle":             true,
	"frozen":             true,
	"rgb":                true,
	"rgba":               true,
	"rgba_premultiplied": true,
	"rgba_unmultiplied":  true,
}

var attrTakesValue = map[string]bool{
	"with":  true,
	"as":    true,
	"range": true,
	"name":  true,
	"step":  true,
}

// fieldAttrs is the parsed `probe:"..."` tag of a field.
type fieldAttrs struct {
	skip    bool
	name    string
	hasName bool
	kind    string
	arg     string
	step    string
}

// parseFieldTag parses the probe key of a struct tag. Problems are
// reported at the tag and the field is skipped.
func parseFieldTag(r *reporter, tag *ast.BasicLit) (fieldAttrs, bool) {
	var a fieldAttrs
	if tag == nil {
		return a, true
	}
	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		r.errorf(tag.Pos(), "malformed struct tag")
		return a, false
	}
	value, ok := reflect.StructTag(raw).Lookup("probe")
	if !ok {
		return a, true
	}

	valid := true
	fail := func(format string, args ...any) {
		r.errorf(tag.Pos(), format, args...)
		valid = false
	}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key, arg, hasArg := strings.Cut(item, "=")
		key, arg = strings.TrimSpace(key), strings.TrimSpace(arg)
		if key != "skip" && !fieldKinds[key] && !attrTakesValue[key] {
			fail("unknown attribute `%s`", key)
			continue
		}
		if attrTakesValue[key] && (!hasArg || arg == "") {
			fail("attribute `%s` needs a value", key)
			continue
		}
		if !attrTakesValue[key] && hasArg {
			fail("attribute `%s` takes no value", key)
			continue
		}
		switch {
		case key == "skip":
			a.skip = true
		case key == "name":
			a.name, a.hasName = arg, true
		case key == "step":
			a.step = arg
		case a.kind != "":
			fail("conflicting attributes `%s` and `%s`", a.kind, key)
		default:
			a.kind, a.arg = key, arg
		}
	}
	if !valid {
		return a, false
	}

	if a.skip {
		if a.hasName {
			r.errorf(tag.Pos(), "Cannot name skipped field")
			return a, false
		}
		if a.kind != "" {
			r.errorf(tag.Pos(), "Cannot use `%s` attribute for skipped field", a.kind)
			return a, false
		}
		if a.step != "" {
			r.errorf(tag.Pos(), "Cannot use `step` attribute for skipped field")
			return a, false
		}
	}
	if a.step != "" && a.kind != "" && a.kind != "range" {
		r.errorf(tag.Pos(), "attribute `step` cannot be combined with `%s`", a.kind)
		return a, false
	}
	return a, true
}

// parseRange splits "lo..hi" or "lo..=hi" where either side may be
// empty. Both bounds are inclusive.
func parseRange(s string) (lo, hi string, ok bool) {
	lo, hi, ok = strings.Cut(s, "..")
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(strings.TrimPrefix(hi, "="))
	if !ok || lo == "" && hi == "" || strings.Contains(hi, "..") {
		return "", "", false
	}
	return lo, hi, true
}
