package layout

// KeyboardColumns returns the left-to-right column table of the hero keyboard.
// Columns 12 and 14 are intentional placeholders so the wave keeps its spacing
// across the gap between the main block and the navigation cluster.
//
// Returns:
//   - Layout: a fresh copy of the keyboard layout
func KeyboardColumns() Layout {
	return Layout{
		{"esc", "grave", "tab", "caps", "lshift", "lcontrol"},
		{"f1", "one", "q", "a", "z", "lalt"},
		{"f2", "two", "w", "s", "x", "lwin"},
		{"f3", "three", "e", "d", "c"},
		{"f4", "four", "r", "f", "v"},
		{"f5", "five", "t", "g", "b", "space"},
		{"f6", "six", "y", "h", "n"},
		{"f7", "seven", "u", "j", "m"},
		{"f8", "eight", "i", "k", "comma"},
		{"f9", "nine", "o", "l", "period"},
		{"f10", "zero", "dash", "p", "semicolon", "slash", "ralt"},
		{"f11", "lsquarebracket", "quote", "rshift", "fn", "arrowleft", "rsquarebracket", "enter", "f12", "equal", "arrowup"},
		{},
		{"del", "backspace", "backslash", "pagedown", "end", "arrowdown", "pageup", "arrowright"},
		{},
	}
}
