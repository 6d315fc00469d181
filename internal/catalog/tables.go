package catalog

// StandardSizes are the X11 cursor sizes generated by default.
var StandardSizes = []int{16, 24, 32, 48, 64, 96, 128}

// ExtendedSizes add intermediate steps for high-DPI displays.
var ExtendedSizes = []int{16, 20, 24, 28, 32, 40, 48, 56, 64, 72, 80, 96, 112, 128}

// DefaultCursorMap is the built-in image → cursor name table.
func DefaultCursorMap() CursorMap {
	return CursorMap{
		"pointer.png":     "left_ptr",
		"alternate.png":   "right_ptr",
		"help.png":        "question_arrow",
		"working.png":     "progress",
		"busy.png":        "wait",
		"link.png":        "hand2",
		"handwriting.png": "pencil",
		"person.png":      "hand1",
		"cross.png":       "crosshair",
		"loc.png":         "cross",
		"horz.png":        "sb_h_double_arrow",
		"vert.png":        "sb_v_double_arrow",
		"dgn1.png":        "top_left_corner",
		"dgn2.png":        "top_right_corner",
		"move.png":        "fleur",
		"unavailable.png": "forbidden",
	}
}

// Essentials are synthesized in this order when missing.
var Essentials = []Essential{
	{"default", "left_ptr"},
	{"arrow", "left_ptr"},
	{"text", "xterm"},
	{"ibeam", "xterm"},
	{"watch", "wait"},
	{"half-busy", "progress"},
	{"col-resize", "sb_h_double_arrow"},
	{"row-resize", "sb_v_double_arrow"},
	{"size_ver", "sb_v_double_arrow"},
	{"size_hor", "sb_h_double_arrow"},
	{"size_bdiag", "top_right_corner"},
	{"size_fdiag", "top_left_corner"},
	{"size_all", "fleur"},
	{"n_resize", "top_side"},
	{"s_resize", "bottom_side"},
	{"e_resize", "right_side"},
	{"w_resize", "left_side"},
	{"ne-resize", "top_right_corner"},
	{"nw-resize", "top_left_corner"},
	{"se-resize", "bottom_right_corner"},
	{"sw-resize", "bottom_left_corner"},
	{"hand", "hand2"},
	{"pointing_hand", "hand2"},
	{"openhand", "hand1"},
	{"closedhand", "hand1"},
	{"grab", "hand1"},
	{"grabbing", "hand1"},
	{"dnd-move", "fleur"},
	{"dnd-none", "forbidden"},
	{"dnd_no_drop", "forbidden"},
	{"no_drop", "forbidden"},
	{"not_allowed", "forbidden"},
	{"whats_this", "question_arrow"},
	{"crossed_circle", "forbidden"},
}

// AliasGroups are linked after essentials are synthesized.
var AliasGroups = []AliasGroup{
	{"left_ptr", "default", "arrow", "top_left_arrow"},
	{"xterm", "text", "ibeam"},
	{"hand2", "hand", "pointer", "pointing_hand"},
	{"hand1", "openhand", "grab"},
	{"wait", "watch"},
	{"progress", "half-busy"},
	{"sb_h_double_arrow", "size_hor", "h-double-arrow", "ew-resize", "col-resize"},
	{"sb_v_double_arrow", "size_ver", "v_double_arrow", "ns-resize", "row-resize"},
	{"top_left_corner", "size_fdiag", "nw-resize", "nwse-resize"},
	{"top_right_corner", "size_bdiag", "ne-resize", "nesw-resize"},
	{"bottom_left_corner", "sw-resize"},
	{"bottom_right_corner", "se-resize"},
	{"fleur", "size_all", "move", "all-scroll"},
	{"forbidden", "not_allowed", "no_drop", "dnd-none", "crossed_circle"},
}
