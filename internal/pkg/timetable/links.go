package timetable

import (
	"regexp"
	"strings"
)

// Link is one hyperlink extracted from an auditory title.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// LinkParser extracts structured links from an HTML-bearing auditory
// title. The upstream embedding format is undocumented, so the extraction
// stays behind this interface and can be swapped without touching the
// grid parser.
type LinkParser interface {
	Parse(title string) []Link
}

var (
	anchorPattern      = regexp.MustCompile(`(?i)<a\s+href="([^"]+)"[^>]*>([^<]*)</a>`)
	emojiPrefixPattern = regexp.MustCompile(`[📷🌐🚀]\s*`)
)

type anchorLinkParser struct{}

// NewAnchorLinkParser returns the default LinkParser matching embedded
// <a href="..">..</a> markup.
func NewAnchorLinkParser() LinkParser {
	return anchorLinkParser{}
}

func (anchorLinkParser) Parse(title string) []Link {
	matches := anchorPattern.FindAllStringSubmatch(title, -1)
	if len(matches) == 0 {
		return nil
	}

	links := make([]Link, 0, len(matches))
	for _, match := range matches {
		text := emojiPrefixPattern.ReplaceAllString(match[2], "")
		links = append(links, Link{
			Href: match[1],
			Text: strings.TrimSpace(text),
		})
	}
	return links
}
