// SPDX-License-Identifier: MIT

package render

// Palette maps each role to a "#rrggbb" colour. Roles missing from a
// palette fall back to the RoleDefault entry.
type Palette map[Role]string

// DefaultPalette returns the standard bar colours.
func DefaultPalette() Palette {
	return Palette{
		RoleDefault:          "#007fff", // blue
		RoleCompare:          "#ff0000", // red
		RoleMinimum:          "#00b200", // green
		RoleCurrent:          "#ffff00", // yellow
		RoleKey:              "#aa00ff", // purple
		RoleMergeRange:       "#ff8000", // orange
		RolePivot:            "#ff0080", // pink
		RoleHeapNode:         "#1fadad", // teal
		RoleHeapLargest:      "#33ffff", // light teal
		RoleTimInsertion:     "#8585e0",
		RoleTimMerge:         "#e0b285",
		RoleCocktailForward:  "#52e099", // mint
		RoleCocktailBackward: "#52b1e0", // sky
		RoleStrandInput:      "#9cb2c9",
		RoleStrandSublist:    "#81e052",
		RoleStrandResult:     "#ffdd33",
		RoleStrandCompare:    "#ff6666",
	}
}

// Color returns the colour of r, falling back to RoleDefault and then to
// the default palette's blue.
func (p Palette) Color(r Role) string {
	if c, ok := p[r]; ok {
		return c
	}
	if c, ok := p[RoleDefault]; ok {
		return c
	}
	return "#007fff"
}
