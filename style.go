package probe

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// BooleanStyle picks the editor used by Bool.
type BooleanStyle uint8

const (
	BooleanCheckbox BooleanStyle = iota
	BooleanToggleSwitch
)

var booleanStyleNames = []string{"checkbox", "toggle_switch"}

func (b BooleanStyle) String() string {
	if int(b) < len(booleanStyleNames) {
		return booleanStyleNames[b]
	}
	return "unknown"
}

func (b BooleanStyle) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BooleanStyle) UnmarshalText(text []byte) error {
	i, err := parseEnumName(booleanStyleNames, string(text), "boolean style")
	*b = BooleanStyle(i)
	return err
}

// VariantsStyle picks how enum variants are chosen.
type VariantsStyle uint8

const (
	// VariantsComboBox shows the active variant in a dropdown.
	VariantsComboBox VariantsStyle = iota
	// VariantsInlined shows every variant as a selectable label.
	VariantsInlined
)

var variantsStyleNames = []string{"combobox", "inlined"}

func (v VariantsStyle) String() string {
	if int(v) < len(variantsStyleNames) {
		return variantsStyleNames[v]
	}
	return "unknown"
}

func (v VariantsStyle) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *VariantsStyle) UnmarshalText(text []byte) error {
	i, err := parseEnumName(variantsStyleNames, string(text), "variants style")
	*v = VariantsStyle(i)
	return err
}

func parseEnumName(names []string, name, what string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.WithDetailf(errors.Newf("unknown %s %q", what, name), "expected one of %v", names)
}

// Style controls how probes draw values.
type Style struct {
	Boolean  BooleanStyle  `yaml:"boolean"`
	Variants VariantsStyle `yaml:"variants"`
	// FieldIndentSize replaces the indent marks of nested rows with blank
	// space of this width when set.
	FieldIndentSize float32 `yaml:"field_indent_size"`
	AddButton       string  `yaml:"add_button"`
	RemoveButton    string  `yaml:"remove_button"`
}

// DefaultStyle returns checkboxes, comboboxes, indent marks and +/- buttons.
func DefaultStyle() Style {
	return Style{}
}

// AddButtonText is the label of buttons that add an element.
func (s *Style) AddButtonText() string {
	if s.AddButton == "" {
		return "+"
	}
	return s.AddButton
}

// RemoveButtonText is the label of buttons that remove an element.
func (s *Style) RemoveButtonText() string {
	if s.RemoveButton == "" {
		return "-"
	}
	return s.RemoveButton
}

// LoadStyle decodes a style from YAML. Missing keys keep their defaults.
//
//	boolean: toggle_switch
//	variants: inlined
//	add_button: "add"
func LoadStyle(r io.Reader) (Style, error) {
	s := DefaultStyle()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, errors.Wrap(err, "decoding probe style")
	}
	if s.FieldIndentSize < 0 {
		return Style{}, errors.Newf("field_indent_size must not be negative, got %v", s.FieldIndentSize)
	}
	return s, nil
}

// ParseStyle is LoadStyle for a byte slice.
func ParseStyle(data []byte) (Style, error) {
	return LoadStyle(bytes.NewReader(data))
}
