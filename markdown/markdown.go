// Package markdown sanitizes untrusted text before it is embedded in
// Discord messages.
package markdown

import "regexp"

// mentionRegex matches @everyone, @here, and raw user/role ID mentions.
var mentionRegex = regexp.MustCompile(`@(everyone|here|[!&]?[0-9]{17,20})`)

// markdownRegex matches, in order: an already-escaped character (left
// alone, which keeps Escape idempotent), hyperlink markup (left alone),
// a markdown control character, or a leading blockquote marker.
var markdownRegex = regexp.MustCompile("(?m)(\\\\.)|(\\[.+?\\]\\(.+?\\))|([_\\\\~|*`]|^>(?:>>)?\\s)")

// Escape neutralizes mentions and markdown in user-supplied text.
// Mentions get a zero-width space after the @ so they render as plain
// text instead of pinging; markdown control characters are
// backslash-escaped. Hyperlink markup and already-escaped characters
// pass through unchanged.
func Escape(text string) string {
	return escapeMarkdown(escapeMentions(text))
}

func escapeMentions(text string) string {
	return mentionRegex.ReplaceAllString(text, "@​${1}")
}

func escapeMarkdown(text string) string {
	return markdownRegex.ReplaceAllStringFunc(text, func(match string) string {
		// Escaped pairs and hyperlink markup pass through. A lone
		// trailing backslash is a control character, not a pair.
		if (match[0] == '\\' && len(match) > 1) || match[0] == '[' {
			return match
		}
		return "\\" + match
	})
}
