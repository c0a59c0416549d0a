package model

import (
	"regexp"
)

// hashtagRegexp accepts letters with their combining marks, so Bengali vowel
// signs stay inside the tag.
var hashtagRegexp = regexp.MustCompile(`#[\p{L}\p{M}\p{N}_]+`)

type TagFormatted struct {
	Tag      string `json:"tag"`
	QuoteNum int64  `json:"quote_num"`
}

// HashtagsOf returns every hashtag token of content in order, duplicates included.
func HashtagsOf(content string) []string {
	tags := hashtagRegexp.FindAllString(content, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}
