package gui

// Option configures a UI widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = gui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.MyWidget("id", gui.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := gui.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// RangeValue holds the bounds for drag values. Either side may be open.
type RangeValue struct {
	Min, Max       float64
	HasMin, HasMax bool
}

// Clamp limits v to the bounds that are set.
func (r RangeValue) Clamp(v float64) float64 {
	if r.HasMin && v < r.Min {
		v = r.Min
	}
	if r.HasMax && v > r.Max {
		v = r.Max
	}
	return v
}

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
)

// --- Text Options ---
var (
	OptHint      = NewOptKey("hint", "")
	OptMultiline = NewOptKey("multiline", false)
	OptTextColor = NewOptKey[uint32]("textColor", 0)
)

// --- DragValue Options ---
var (
	OptStep      = NewOptKey[float64]("step", 0)
	OptRange     = NewOptKey("range", RangeValue{})
	OptDragSpeed = NewOptKey[float64]("dragSpeed", 0)
	OptDecimals  = NewOptKey("decimals", -1) // -1 picks from the value
	OptPrefix    = NewOptKey("prefix", "")
	OptSuffix    = NewOptKey("suffix", "")
)

// --- ComboBox Options ---
var (
	OptMaxDropdownHeight = NewOptKey[float32]("maxDropdownHeight", 0)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithHint sets the text shown in an empty text edit.
func WithHint(hint string) Option { return WithOpt(OptHint, hint) }

// Multiline lets a text edit hold several lines; Enter inserts a newline.
func Multiline() Option { return WithOpt(OptMultiline, true) }

// WithTextColor overrides the text color of a text edit.
func WithTextColor(color uint32) Option { return WithOpt(OptTextColor, color) }

// WithStep snaps dragged values to multiples of step.
func WithStep(step float64) Option { return WithOpt(OptStep, step) }

// WithRange bounds a drag value on both sides.
func WithRange(minVal, maxVal float64) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasMin: true, HasMax: true})
}

// WithBounds sets a possibly half-open range.
func WithBounds(r RangeValue) Option { return WithOpt(OptRange, r) }

// WithDragSpeed sets the value change per pixel of mouse movement.
func WithDragSpeed(speed float64) Option { return WithOpt(OptDragSpeed, speed) }

// WithDecimals fixes the number of decimals shown.
func WithDecimals(n int) Option { return WithOpt(OptDecimals, n) }

// WithPrefix sets a prefix text displayed before the value.
func WithPrefix(prefix string) Option { return WithOpt(OptPrefix, prefix) }

// WithSuffix sets a suffix text displayed after the value.
func WithSuffix(suffix string) Option { return WithOpt(OptSuffix, suffix) }

// WithMaxDropdownHeight limits the maximum height of dropdown menus.
func WithMaxDropdownHeight(height float32) Option { return WithOpt(OptMaxDropdownHeight, height) }
