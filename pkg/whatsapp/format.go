package whatsapp

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`__(.*?)__`)
	monoRe   = regexp.MustCompile("`([^`]*?)`")
)

// FormatMessage converts Markdown emphasis produced by the LLM into
// WhatsApp markup.
func FormatMessage(text string) string {
	text = boldRe.ReplaceAllString(text, "*$1*")
	text = italicRe.ReplaceAllString(text, "_${1}_")
	text = monoRe.ReplaceAllString(text, "```$1```")
	return strings.TrimSpace(text)
}
