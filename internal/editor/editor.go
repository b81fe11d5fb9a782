// Package editor normalizes rich-text HTML coming from the admin editor
// before it is persisted. The editor exposes a fixed, non-extensible
// capability set (basic formatting, headings 1-3, lists, blockquote,
// alignment, links, images by URL, a ten-color palette); anything outside
// that set is stripped here so the stored document always matches what the
// editor can produce.
package editor

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/journalist-portfolio-api/internal/content"
)

// Palette is the fixed set of text colors the editor offers.
var Palette = map[string]bool{
	"#000000": true,
	"#374151": true,
	"#6b7280": true,
	"#ef4444": true,
	"#f97316": true,
	"#f59e0b": true,
	"#10b981": true,
	"#3b82f6": true,
	"#8b5cf6": true,
	"#ec4899": true,
}

// Stats describes a normalized document the way the editor footer does.
type Stats struct {
	Characters  int `json:"characters"`
	Words       int `json:"words"`
	ReadingTime int `json:"reading_time"`
}

// block elements that may carry a text-align style
var alignable = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true,
}

// elements kept as-is (children re-filtered)
var allowed = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true,
	"ul": true, "ol": true, "li": true, "blockquote": true,
	"strong": true, "em": true, "u": true, "s": true, "code": true,
	"a": true, "span": true,
	"br": true, "hr": true, "img": true,
}

// elements dropped together with their content
var dropped = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true,
	"embed": true, "noscript": true, "head": true, "title": true,
	"form": true, "input": true, "button": true,
}

// tag renames applied during normalization
var renames = map[string]string{
	"b": "strong",
	"i": "em",
}

var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true,
}

var alignValues = map[string]bool{
	"left": true, "center": true, "right": true, "justify": true,
}

// Normalize filters an HTML document against the editor capability set and
// returns the cleaned markup. Unknown wrappers are unwrapped (their text
// survives); unsafe subtrees are removed entirely. Deterministic: the same
// input always yields the same output.
func Normalize(input string) (string, error) {
	nodes, err := parseFragment(input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		renderNode(&b, n)
	}
	return b.String(), nil
}

// PlainText extracts the visible text of an HTML document, with block
// boundaries collapsed to single spaces.
func PlainText(input string) string {
	nodes, err := parseFragment(input)
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, n := range nodes {
		collectText(&b, n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ComputeStats reports character, word and reading-time counts for a
// document, mirroring the counters shown in the editor footer.
func ComputeStats(input string) Stats {
	text := PlainText(input)
	return Stats{
		Characters:  len([]rune(text)),
		Words:       content.WordCount(text),
		ReadingTime: content.ReadingTime(text),
	}
}

func parseFragment(input string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	return html.ParseFragment(strings.NewReader(input), ctx)
}

func renderNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
		// fall through
	default:
		return
	}

	tag := strings.ToLower(n.Data)
	if r, ok := renames[tag]; ok {
		tag = r
	}
	if dropped[tag] {
		return
	}
	if !allowed[tag] {
		// Unknown wrapper: keep the content, lose the tag.
		renderChildren(b, n)
		return
	}

	attrs := filterAttrs(tag, n.Attr)
	if tag == "a" && attrs == "" {
		// A link without a safe href is just text.
		renderChildren(b, n)
		return
	}
	if tag == "img" && attrs == "" {
		return
	}
	if tag == "span" && attrs == "" {
		renderChildren(b, n)
		return
	}

	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(attrs)
	b.WriteByte('>')
	if voidTags[tag] {
		return
	}
	renderChildren(b, n)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func renderChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(b, c)
	}
}

// filterAttrs keeps only the attributes the capability set grants to a tag
// and returns them pre-rendered (leading space included) in a fixed order.
func filterAttrs(tag string, attrs []html.Attribute) string {
	var b strings.Builder

	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		switch {
		case tag == "a" && key == "href":
			if safeURL(a.Val, true) {
				writeAttr(&b, "href", a.Val)
			}
		case tag == "img" && key == "src":
			if safeURL(a.Val, false) {
				writeAttr(&b, "src", a.Val)
			}
		case tag == "img" && key == "alt":
			writeAttr(&b, "alt", a.Val)
		case tag == "span" && key == "style":
			if c, ok := paletteColor(a.Val); ok {
				writeAttr(&b, "style", "color: "+c)
			}
		case alignable[tag] && key == "style":
			if v, ok := textAlign(a.Val); ok {
				writeAttr(&b, "style", "text-align: "+v)
			}
		}
	}
	return b.String()
}

func writeAttr(b *strings.Builder, key, val string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(val))
	b.WriteByte('"')
}

func safeURL(raw string, allowMailto bool) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	case "mailto":
		return allowMailto
	}
	return false
}

// paletteColor extracts a color declaration from an inline style and checks
// it against the fixed palette.
func paletteColor(style string) (string, bool) {
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(strings.ToLower(parts[0])) != "color" {
			continue
		}
		c := strings.ToLower(strings.TrimSpace(parts[1]))
		if Palette[c] {
			return c, true
		}
	}
	return "", false
}

func textAlign(style string) (string, bool) {
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(strings.ToLower(parts[0])) != "text-align" {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(parts[1]))
		if alignValues[v] {
			return v, true
		}
	}
	return "", false
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type != html.ElementNode {
		return
	}
	if dropped[strings.ToLower(n.Data)] {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	// Block boundaries must not glue words together. Inline wrappers can
	// split a word in half, so they contribute no separator.
	tag := strings.ToLower(n.Data)
	if !inline[tag] {
		b.WriteByte(' ')
	}
}

var inline = map[string]bool{
	"strong": true, "b": true, "em": true, "i": true, "u": true,
	"s": true, "code": true, "a": true, "span": true,
}
