package site

import (
	"fmt"
	"html"
	"net/url"
	"strings"
)

// svgTemplate keeps the layout of the hand-written icon, so the default data URI is stable byte for byte.
const svgTemplate = "\n" +
	"              <svg xmlns=\"http://www.w3.org/2000/svg\" width=\"64\" height=\"64\">\n" +
	"                <rect x=\"0\" y=\"0\" width=\"64\" height=\"64\" rx=\"12\" ry=\"12\" fill=\"%s\" />\n" +
	"                <text x=\"50%%\" y=\"50%%\" font-size=\"32\" font-weight=\"bold\" fill=\"white\" text-anchor=\"middle\" dominant-baseline=\"central\">\n" +
	"                  %s\n" +
	"                </text>\n" +
	"              </svg>\n" +
	"            "

// componentEscaper turns url.QueryEscape output into encodeURIComponent output.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// SVG renders the favicon: a rounded square filled with fill and a centered bold white letter.
func SVG(letter, fill string) string {
	return fmt.Sprintf(svgTemplate, html.EscapeString(fill), html.EscapeString(letter))
}

// Favicon returns the favicon as a data URI.
func Favicon(letter, fill string) string {
	return "data:image/svg+xml," + EscapeComponent(SVG(letter, fill))
}

// EscapeComponent percent-encodes s as a URI component.
// Only letters, digits and -_.!~*'() are left as they are.
func EscapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}
