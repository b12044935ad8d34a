// Package palette holds the ANSI color data behind the built-in themes.
// Everything here is immutable configuration: initialized once, never
// mutated.
package palette

import "strconv"

// Text attributes, combined with a palette color by the theme layer.
const (
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
	Faint     = "\x1b[2m"
)

// Palette maps the semantic slots of a theme to ANSI color prefixes. An
// empty slot means the terminal default.
type Palette struct {
	Text           string
	H1             string
	H2             string
	H3             string
	H4             string
	H5             string
	H6             string
	Emphasis       string
	Strong         string
	EmphasisStrong string
	Strikethrough  string
	CodeInline     string
	CodeBlock      string
	Quote          string
	ListMarker     string
	LinkText       string
	LinkURL        string
	ThematicBreak  string
}

// fg returns the prefix selecting 256-color foreground n.
func fg(n int) string {
	return "\x1b[38;5;" + strconv.Itoa(n) + "m"
}

// PaletteDefault sticks to the basic 16 colors so it degrades well on
// minimal terminals.
var PaletteDefault = Palette{
	H1:            "\x1b[1;36m",
	H2:            "\x1b[1;36m",
	H3:            "\x1b[36m",
	H4:            "\x1b[36m",
	H5:            "\x1b[36m",
	H6:            "\x1b[36m",
	CodeInline:    "\x1b[33m",
	CodeBlock:     "\x1b[33m",
	Quote:         "\x1b[32m",
	ListMarker:    "\x1b[35m",
	LinkText:      "\x1b[34m",
	LinkURL:       "\x1b[2;34m",
	ThematicBreak: "\x1b[2m",
}

var PaletteGruvbox = Palette{
	Text:          fg(223),
	H1:            fg(214),
	H2:            fg(214),
	H3:            fg(208),
	H4:            fg(208),
	H5:            fg(172),
	H6:            fg(172),
	CodeInline:    fg(142),
	CodeBlock:     fg(142),
	Quote:         fg(109),
	ListMarker:    fg(175),
	LinkText:      fg(109),
	LinkURL:       fg(246),
	ThematicBreak: fg(245),
}

var PaletteDracula = Palette{
	Text:          fg(253),
	H1:            fg(212),
	H2:            fg(212),
	H3:            fg(141),
	H4:            fg(141),
	H5:            fg(117),
	H6:            fg(117),
	CodeInline:    fg(228),
	CodeBlock:     fg(228),
	Quote:         fg(84),
	ListMarker:    fg(212),
	LinkText:      fg(117),
	LinkURL:       fg(103),
	ThematicBreak: fg(61),
}

var PaletteNord = Palette{
	Text:          fg(188),
	H1:            fg(110),
	H2:            fg(110),
	H3:            fg(109),
	H4:            fg(109),
	H5:            fg(152),
	H6:            fg(152),
	CodeInline:    fg(143),
	CodeBlock:     fg(143),
	Quote:         fg(108),
	ListMarker:    fg(139),
	LinkText:      fg(110),
	LinkURL:       fg(60),
	ThematicBreak: fg(59),
}

var PaletteTokyoNight = Palette{
	Text:          fg(146),
	H1:            fg(75),
	H2:            fg(75),
	H3:            fg(111),
	H4:            fg(111),
	H5:            fg(141),
	H6:            fg(141),
	CodeInline:    fg(179),
	CodeBlock:     fg(179),
	Quote:         fg(115),
	ListMarker:    fg(204),
	LinkText:      fg(111),
	LinkURL:       fg(103),
	ThematicBreak: fg(60),
}

var PaletteSolarizedDark = Palette{
	Text:          fg(244),
	H1:            fg(33),
	H2:            fg(33),
	H3:            fg(37),
	H4:            fg(37),
	H5:            fg(64),
	H6:            fg(64),
	CodeInline:    fg(136),
	CodeBlock:     fg(136),
	Quote:         fg(64),
	ListMarker:    fg(125),
	LinkText:      fg(33),
	LinkURL:       fg(241),
	ThematicBreak: fg(240),
}

var PaletteGithubDark = Palette{
	Text:          fg(252),
	H1:            fg(39),
	H2:            fg(39),
	H3:            fg(75),
	H4:            fg(75),
	H5:            fg(117),
	H6:            fg(117),
	CodeInline:    fg(209),
	CodeBlock:     fg(209),
	Quote:         fg(245),
	ListMarker:    fg(114),
	LinkText:      fg(75),
	LinkURL:       fg(244),
	ThematicBreak: fg(240),
}

var PaletteGithubLight = Palette{
	Text:          fg(235),
	H1:            fg(25),
	H2:            fg(25),
	H3:            fg(31),
	H4:            fg(31),
	H5:            fg(67),
	H6:            fg(67),
	CodeInline:    fg(124),
	CodeBlock:     fg(124),
	Quote:         fg(242),
	ListMarker:    fg(29),
	LinkText:      fg(25),
	LinkURL:       fg(245),
	ThematicBreak: fg(250),
}
