// Package hotspot computes the pointing location of a cursor bitmap.
package hotspot

// Rule selects how a cursor's hotspot is placed.
type Rule int

const (
	Center Rule = iota
	Arrow
	Hand
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var ruleNames = [...]string{"center", "arrow", "hand", "top-left", "top-right", "bottom-left", "bottom-right"}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "unknown"
	}
	return ruleNames[r]
}

// rules maps cursor names to their placement. Names missing here use Center.
// Text, cross, move, double-arrow, wait and forbidden cursors are listed so
// the table documents them, even though they resolve to the default.
var rules = map[string]Rule{
	// Arrow tip
	"left_ptr":       Arrow,
	"arrow":          Arrow,
	"default":        Arrow,
	"right_ptr":      Arrow,
	"top_left_arrow": Arrow,

	// Finger tip
	"hand2":         Hand,
	"hand":          Hand,
	"pointer":       Hand,
	"pointing_hand": Hand,

	"xterm": Center, "text": Center, "ibeam": Center,
	"crosshair": Center, "cross": Center, "tcross": Center, "diamond_cross": Center,
	"fleur": Center, "size_all": Center, "move": Center,
	"sb_h_double_arrow": Center, "size_hor": Center, "h-double-arrow": Center, "col-resize": Center,
	"sb_v_double_arrow": Center, "size_ver": Center, "v_double_arrow": Center, "row-resize": Center,
	"watch": Center, "wait": Center, "progress": Center,
	"forbidden": Center, "not_allowed": Center, "crossed_circle": Center,

	"top_left_corner": TopLeft, "nw-resize": TopLeft, "size_fdiag": TopLeft,
	"top_right_corner": TopRight, "ne-resize": TopRight, "size_bdiag": TopRight,
	"bottom_left_corner": BottomLeft, "sw-resize": BottomLeft,
	"bottom_right_corner": BottomRight, "se-resize": BottomRight,
}

// Classify returns the placement rule for a cursor name.
func Classify(name string) Rule {
	return rules[name]
}

// Calculate returns the hotspot of cursor name rendered at size×size pixels.
// Offsets from an edge are never smaller than 1, and the result always lies
// inside the bitmap.
func Calculate(name string, size int) (x, y int) {
	if size <= 0 {
		return 0, 0
	}

	x, y = size/2, size/2
	switch Classify(name) {
	case Arrow:
		x, y = atLeast1(size/16), atLeast1(size/16)
	case Hand:
		x, y = atLeast1(size*6/32), atLeast1(size/16)
	case TopLeft:
		o := atLeast1(size / 8)
		x, y = o, o
	case TopRight:
		o := atLeast1(size / 8)
		x, y = size-o, o
	case BottomLeft:
		o := atLeast1(size / 8)
		x, y = o, size-o
	case BottomRight:
		o := atLeast1(size / 8)
		x, y = size-o, size-o
	}

	return clamp(x, size), clamp(y, size)
}

func atLeast1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func clamp(v, size int) int {
	if v >= size {
		return size - 1
	}
	if v < 0 {
		return 0
	}
	return v
}
