package render

import "strings"

// TextStyle captures the inline formatting applied to a run of text.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Uppercase bool
	Size      string
	Color     string
	Extra     string
}

// CSS renders the style as an inline style attribute value.
func (s TextStyle) CSS() string {
	var parts []string
	if s.Bold {
		parts = append(parts, "font-weight:700")
	}
	if s.Italic {
		parts = append(parts, "font-style:italic")
	}
	if s.Uppercase {
		parts = append(parts, "text-transform:uppercase")
	}
	if s.Size != "" {
		parts = append(parts, "font-size:"+s.Size)
	}
	if s.Color != "" {
		parts = append(parts, "color:"+s.Color)
	}
	if s.Extra != "" {
		parts = append(parts, s.Extra)
	}
	return strings.Join(parts, ";")
}

const (
	mutedColor   = "#475569"
	subtleColor  = "#64748b"
	faintColor   = "#94a3b8"
	inkColor     = "#1e293b"
	dividerColor = "#cbd5e1"
)

// Font stacks per template.
const (
	fontSerif = "Merriweather, Georgia, serif"
	fontSans  = "Inter, Helvetica, Arial, sans-serif"
	fontRound = "Outfit, Helvetica, Arial, sans-serif"
)

// StyleMap holds the text styles shared by the entry and section blocks of
// each template. Heading colors that follow the theme are filled in at render
// time.
var StyleMap = map[string]map[string]TextStyle{
	"classic": {
		"name":    {Bold: true, Uppercase: true, Size: "2.25rem", Extra: "letter-spacing:0.05em"},
		"title":   {Size: "1.25rem", Color: mutedColor},
		"heading": {Bold: true, Uppercase: true, Size: "0.875rem", Extra: "letter-spacing:0.1em;border-bottom:1px solid " + dividerColor + ";padding-bottom:0.5rem"},
		"entry":   {Bold: true, Size: "1.125rem", Color: inkColor},
		"meta":    {Italic: true, Color: mutedColor},
		"dates":   {Size: "0.875rem", Color: subtleColor},
	},
	"modern": {
		"name":    {Bold: true, Size: "1.25rem"},
		"title":   {Size: "0.875rem", Extra: "opacity:0.8"},
		"heading": {Bold: true, Size: "1.25rem", Extra: "border-bottom:2px solid #f1f5f9;padding-bottom:0.5rem"},
		"sidebar": {Bold: true, Size: "1.125rem", Extra: "border-bottom:1px solid rgba(255,255,255,0.2);padding-bottom:0.5rem"},
		"entry":   {Bold: true, Size: "1.125rem", Color: inkColor},
		"meta":    {Size: "0.875rem"},
		"dates":   {Size: "0.875rem", Color: subtleColor},
	},
	"creative": {
		"name":    {Bold: true, Size: "3rem", Extra: "letter-spacing:-0.025em"},
		"title":   {Size: "1.25rem", Extra: "opacity:0.9"},
		"heading": {Bold: true, Uppercase: true, Size: "1.25rem", Extra: "letter-spacing:0.05em"},
		"entry":   {Bold: true, Size: "1.125rem", Color: inkColor},
		"meta":    {Bold: true, Size: "0.875rem"},
		"dates":   {Uppercase: true, Size: "0.75rem", Color: faintColor},
	},
	"executive": {
		"name":    {Bold: true, Uppercase: true, Size: "3rem", Color: "#0f172a"},
		"title":   {Size: "1.5rem", Color: mutedColor, Extra: "font-weight:300"},
		"heading": {Bold: true, Uppercase: true, Size: "0.875rem", Color: faintColor, Extra: "letter-spacing:0.1em"},
		"entry":   {Bold: true, Size: "1.125rem", Color: "#0f172a"},
		"meta":    {Bold: true},
		"dates":   {Size: "0.875rem", Color: subtleColor, Extra: "font-family:monospace"},
	},
	"minimal": {
		"name":    {Uppercase: true, Size: "1.875rem", Extra: "font-weight:300;letter-spacing:0.1em"},
		"title":   {Uppercase: true, Size: "0.875rem", Color: faintColor, Extra: "letter-spacing:0.1em"},
		"heading": {Bold: true, Uppercase: true, Size: "0.75rem", Extra: "letter-spacing:0.1em;text-align:center;border-bottom:1px solid #f1f5f9;padding-bottom:1rem"},
		"entry":   {Bold: true, Color: inkColor},
		"meta":    {Size: "0.875rem", Color: subtleColor},
		"dates":   {Size: "0.75rem", Color: faintColor},
	},
}

func styleFor(template, key string) TextStyle {
	return StyleMap[template][key]
}
