package service

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"pujo-gallery/internal/model"
	"pujo-gallery/pkg/errcode"
)

func TestShareLink(t *testing.T) {
	if link := ShareLink("pujogallery.com", "post-01H"); link != "https://pujogallery.com/posts/post-01H" {
		t.Errorf("unexpected link %s", link)
	}
}

func TestShareTargets(t *testing.T) {
	post := model.SeedPosts()[1]
	link := ShareLink("pujogallery.com", post.ID)
	expect := map[SharePlatform]string{
		SharePlatformCopy:     "https://pujogallery.com/posts/1",
		SharePlatformFacebook: "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fpujogallery.com%2Fposts%2F1",
		SharePlatformTwitter:  "https://twitter.com/intent/tweet?text=Check%20out%20Bikram%20Mondal%27s%20post%20on%20Pujo%20Gallery%21&url=https%3A%2F%2Fpujogallery.com%2Fposts%2F1",
		SharePlatformEmail:    "mailto:?subject=Check%20out%20Bikram%20Mondal%27s%20post%20on%20Pujo%20Gallery%21&body=https%3A%2F%2Fpujogallery.com%2Fposts%2F1",
		SharePlatformWhatsApp: "https://wa.me/?text=Check%20out%20Bikram%20Mondal%27s%20post%20on%20Pujo%20Gallery%21%20https%3A%2F%2Fpujogallery.com%2Fposts%2F1",
	}

	targets := ShareTargets("pujogallery.com", post)
	if len(targets) != len(expect) {
		t.Fatalf("want %d targets but got %d", len(expect), len(targets))
	}
	for _, target := range targets {
		if target.URL != expect[target.Platform] {
			t.Errorf("%s: want %s but got %s", target.Platform, expect[target.Platform], target.URL)
		}
		u, err := url.Parse(target.URL)
		if err != nil {
			t.Errorf("%s: malformed url: %v", target.Platform, err)
			continue
		}
		if target.Platform == SharePlatformCopy {
			continue
		}
		found := false
		for _, values := range u.Query() {
			for _, v := range values {
				if strings.Contains(v, link) {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("%s: link missing from %s", target.Platform, target.URL)
		}
	}

	if target, err := ShareTargetOf("pujogallery.com", post, "Twitter"); err != nil || target.Platform != SharePlatformTwitter {
		t.Errorf("platform should be case insensitive: %v %v", target, err)
	}
	if _, err := ShareTargetOf("pujogallery.com", post, "myspace"); !errors.Is(err, errcode.InvalidParams) {
		t.Errorf("want InvalidParams but got %v", err)
	}
}
