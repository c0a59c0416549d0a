package service

import (
	"fmt"
	"net/url"
	"strings"

	"pujo-gallery/internal/model"
	"pujo-gallery/pkg/errcode"
)

type SharePlatform string

const (
	SharePlatformCopy     SharePlatform = "copy"
	SharePlatformFacebook SharePlatform = "facebook"
	SharePlatformTwitter  SharePlatform = "twitter"
	SharePlatformEmail    SharePlatform = "email"
	SharePlatformWhatsApp SharePlatform = "whatsapp"
)

var sharePlatforms = []SharePlatform{
	SharePlatformCopy,
	SharePlatformFacebook,
	SharePlatformTwitter,
	SharePlatformEmail,
	SharePlatformWhatsApp,
}

type ShareTarget struct {
	Platform SharePlatform `json:"platform"`
	URL      string        `json:"url"`
}

func ShareLink(host string, postID string) string {
	return fmt.Sprintf("https://%s/posts/%s", host, url.PathEscape(postID))
}

// escape encodes spaces as %20, mail clients do not decode '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func ShareTitle(post *model.Post) string {
	return fmt.Sprintf("Check out %s's post on Pujo Gallery!", post.Author.Name)
}

// ShareTargets builds the hand-off URL of every supported platform.
func ShareTargets(host string, post *model.Post) []*ShareTarget {
	targets := make([]*ShareTarget, 0, len(sharePlatforms))
	for _, platform := range sharePlatforms {
		target, _ := ShareTargetOf(host, post, platform)
		targets = append(targets, target)
	}
	return targets
}

func ShareTargetOf(host string, post *model.Post, platform SharePlatform) (*ShareTarget, error) {
	link := ShareLink(host, post.ID)
	title := ShareTitle(post)
	var target string
	switch SharePlatform(strings.ToLower(string(platform))) {
	case SharePlatformCopy, "":
		platform, target = SharePlatformCopy, link
	case SharePlatformFacebook:
		target = "https://www.facebook.com/sharer/sharer.php?u=" + escape(link)
	case SharePlatformTwitter:
		target = "https://twitter.com/intent/tweet?text=" + escape(title) + "&url=" + escape(link)
	case SharePlatformEmail:
		target = "mailto:?subject=" + escape(title) + "&body=" + escape(link)
	case SharePlatformWhatsApp:
		target = "https://wa.me/?text=" + escape(title+" "+link)
	default:
		return nil, errcode.InvalidParams.WithDetails("unknown share platform " + string(platform))
	}
	return &ShareTarget{
		Platform: SharePlatform(strings.ToLower(string(platform))),
		URL:      target,
	}, nil
}
