// Package cover renders placeholder book covers as SVG documents.
//
// Rendering is a pure function of (title, author, width, height): the
// background hue is hashed from the text and the text is laid out with a
// greedy word wrap using fixed average glyph widths, not real font metrics.
package cover

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	DefaultTitle  = "Book"
	DefaultAuthor = "Author"
	DefaultWidth  = 96
	DefaultHeight = 128

	padding      = 8
	cornerRadius = 10

	titleFontSize  = 14
	authorFontSize = 11
	lineSpacing    = 5
	maxTitleLines  = 3
	maxAuthorLines = 2

	titleGlyphWidth  = 7.0
	authorGlyphWidth = 6.5

	titleTop     = 20
	authorBottom = 3

	saturation     = 60
	lightLightness = 85
	darkLightness  = 65
)

// Hue derives a stable color angle in [0,359] from title and author.
// The hash runs over UTF-16 code units with 32-bit two's-complement
// wraparound at every step.
func Hue(title, author string) int {
	var hash int32
	for _, unit := range utf16.Encode([]rune(title + author)) {
		hash = hash*31 + int32(unit)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % 360)
}

// HSL formats a CSS hsl() color.
func HSL(hue, sat, light int) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, sat, light)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape escapes the five XML special characters. Each input character is
// replaced at most once, so entities are never double-escaped. Characters
// XML 1.0 does not allow, and invalid UTF-8, become U+FFFD.
func Escape(s string) string {
	return xmlReplacer.Replace(strings.Map(xmlChar, s))
}

func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r < 0x20, r == 0xFFFE, r == 0xFFFF:
		return utf8.RuneError
	}
	return r
}

// textLen measures s in UTF-16 code units, the unit the character budget
// is expressed in.
func textLen(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Wrap splits text on spaces and packs words greedily into lines of at most
// maxChars UTF-16 code units. A word longer than maxChars gets a line of its own
// and is never split. Runs of spaces collapse to one.
func Wrap(text string, maxChars int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if textLen(candidate) <= maxChars {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Layout is the computed placement of the cover text.
type Layout struct {
	Hue         int
	TitleLines  []string
	AuthorLines []string
	// TitleY and AuthorY hold the baseline of each line.
	TitleY  []int
	AuthorY []int
}

// Compute lays out title and author on a width x height cover.
func Compute(title, author string, width, height int) Layout {
	maxTextWidth := float64(width - 2*padding)
	titleLines := truncate(Wrap(title, int(math.Floor(maxTextWidth/titleGlyphWidth))), maxTitleLines)
	authorLines := truncate(Wrap(author, int(math.Floor(maxTextWidth/authorGlyphWidth))), maxAuthorLines)

	l := Layout{
		Hue:         Hue(title, author),
		TitleLines:  titleLines,
		AuthorLines: authorLines,
		TitleY:      make([]int, len(titleLines)),
		AuthorY:     make([]int, len(authorLines)),
	}
	for i := range titleLines {
		l.TitleY[i] = titleTop + i*(titleFontSize+lineSpacing)
	}
	authorStartY := height - len(authorLines)*(authorFontSize+lineSpacing) - authorBottom
	for i := range authorLines {
		l.AuthorY[i] = authorStartY + i*(authorFontSize+lineSpacing)
	}
	return l
}

// Render returns the SVG document for the given cover.
func Render(title, author string, width, height int) string {
	l := Compute(title, author, width, height)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">`+"\n",
		width, height, width, height)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <linearGradient id="coverGradient" x1="0" y1="0" x2="0" y2="1">` + "\n")
	fmt.Fprintf(&b, `      <stop offset="0%%" stop-color="%s" />`+"\n", HSL(l.Hue, saturation, lightLightness))
	fmt.Fprintf(&b, `      <stop offset="100%%" stop-color="%s" />`+"\n", HSL(l.Hue, saturation, darkLightness))
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" rx="%d" fill="url(#coverGradient)" />`+"\n", width, height, cornerRadius)
	for i, line := range l.TitleLines {
		fmt.Fprintf(&b, `  <text x="50%%" y="%d" text-anchor="middle" font-size="%d" font-family="Arial, sans-serif" fill="#222" font-weight="bold">%s</text>`+"\n",
			l.TitleY[i], titleFontSize, Escape(line))
	}
	for i, line := range l.AuthorLines {
		fmt.Fprintf(&b, `  <text x="50%%" y="%d" text-anchor="middle" font-size="%d" font-family="Arial, sans-serif" fill="#333">%s</text>`+"\n",
			l.AuthorY[i], authorFontSize, Escape(line))
	}
	b.WriteString("</svg>")
	return b.String()
}

func truncate(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
