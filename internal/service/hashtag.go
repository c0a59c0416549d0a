package service

import (
	"sort"

	"pujo-gallery/internal/model"
)

const DefaultTrendingLimit = 5

// ExtractHashtags ranks the hashtags of posts by how often they occur. Ties
// keep the order in which the tags were first seen. A non-positive limit
// means DefaultTrendingLimit.
func ExtractHashtags(posts []*model.Post, limit int) []*model.TagFormatted {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	counts := make(map[string]*model.TagFormatted)
	tags := make([]*model.TagFormatted, 0)
	for _, post := range posts {
		for _, tag := range model.HashtagsOf(post.Content) {
			item, ok := counts[tag]
			if !ok {
				item = &model.TagFormatted{Tag: tag}
				counts[tag] = item
				tags = append(tags, item)
			}
			item.QuoteNum++
		}
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].QuoteNum > tags[j].QuoteNum
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// TrendingTags falls back to fallback when the feed carries no hashtag at all.
func TrendingTags(posts []*model.Post, limit int, fallback []string) []*model.TagFormatted {
	tags := ExtractHashtags(posts, limit)
	if len(tags) > 0 {
		return tags
	}
	for _, tag := range fallback {
		tags = append(tags, &model.TagFormatted{Tag: tag})
	}
	return tags
}
