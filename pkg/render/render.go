// Package render turns model output into HTML for the result panel.
// Only the markers the model is asked to produce are recognized: **bold** and
// bullet lines starting with "* ", "- " or "• ". Everything else is escaped text.
package render

import (
	"html"
	"regexp"
	"strings"
)

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

var bulletPrefixes = []string{"* ", "- ", "• "}

// HTML renders text as paragraphs and bullet lists. The output is safe to inject.
func HTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		b         strings.Builder
		paragraph []string
		items     []string
	)

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(paragraph, "<br>"))
		b.WriteString("</p>")
		paragraph = paragraph[:0]
	}
	flushList := func() {
		if len(items) == 0 {
			return
		}
		b.WriteString("<ul>")
		for _, item := range items {
			b.WriteString("<li>")
			b.WriteString(item)
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		items = items[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if item, ok := bulletItem(trimmed); ok {
			flushParagraph()
			items = append(items, inline(item))
			continue
		}

		flushList()
		if trimmed == "" {
			flushParagraph()
			continue
		}
		paragraph = append(paragraph, inline(trimmed))
	}

	flushParagraph()
	flushList()
	return b.String()
}

func bulletItem(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

func inline(s string) string {
	return boldPattern.ReplaceAllString(html.EscapeString(s), "<strong>$1</strong>")
}
