package input

// Virtual key codes as reported by the window. Printable keys use their ASCII values,
// matching GLFW key codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	Key1 = 49
	Key2 = 50
	Key3 = 51
	Key4 = 52
	Key5 = 53
	Key6 = 54
	Key7 = 55
	Key8 = 56
	Key9 = 57

	KeyLeft  = 263
	KeyRight = 262
)

// VariantKey maps a key press to a variant selection among count variants.
// The digit keys 1-9 select a variant directly; the arrow keys cycle from current.
//
// Parameters:
//   - keyCode: the virtual key code
//   - current: index of the variant shown now
//   - count: number of selectable variants
//
// Returns:
//   - int: index of the selected variant
//   - bool: false if the key selects nothing
func VariantKey(keyCode uint32, current, count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	switch {
	case keyCode >= Key1 && keyCode <= Key9:
		i := int(keyCode - Key1)
		return i, i < count
	case keyCode == KeyRight:
		return (current + 1) % count, true
	case keyCode == KeyLeft:
		return (current - 1 + count) % count, true
	}
	return 0, false
}
