package model

import (
	"strings"
)

// PostKind regular posts may carry media, blog posts are long-form text only.
type PostKind string

const (
	PostKindRegular PostKind = "regular"
	PostKindBlog    PostKind = "blog"
)

const JustNow = "Just now"

type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Verified  bool      `json:"verified"`
	BadgeTier BadgeTier `json:"badge_tier,omitempty"`
}

type CommentAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Comment struct {
	ID     string        `json:"id"`
	Author CommentAuthor `json:"author"`
	Text   string        `json:"text"`
}

type Post struct {
	ID           string     `json:"id"`
	Author       Author     `json:"author"`
	Timestamp    string     `json:"timestamp"`
	CreatedOn    int64      `json:"created_on"`
	Content      string     `json:"content"`
	Kind         PostKind   `json:"kind"`
	Image        string     `json:"image,omitempty"`
	Video        string     `json:"video,omitempty"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	ShareCount   int64      `json:"share_count"`
	Comments     []*Comment `json:"comments"`
}

type PostFormatted struct {
	ID                 string     `json:"id"`
	Author             *Author    `json:"author"`
	Timestamp          string     `json:"timestamp"`
	CreatedOn          int64      `json:"created_on"`
	Content            string     `json:"content"`
	Kind               PostKind   `json:"kind"`
	Image              string     `json:"image,omitempty"`
	Video              string     `json:"video,omitempty"`
	LikeCount          int64      `json:"like_count"`
	CommentCount       int64      `json:"comment_count"`
	ShareCount         int64      `json:"share_count"`
	Comments           []*Comment `json:"comments"`
	Tags               []string   `json:"tags"`
	OwnedByCurrentUser bool       `json:"owned_by_current_user"`
	LikedByCurrentUser bool       `json:"liked_by_current_user"`
}

type IndexPostsResp struct {
	Tweets   []*PostFormatted
	Total    int64
	Revision uint64
}

// PostDraft is what the compose action hands to the feed store.
type PostDraft struct {
	Author  Author
	Content string
	Image   string
	Video   string
	Blog    bool
}

type CommentDraft struct {
	Author CommentAuthor
	Text   string
}

// IsEmpty reports a draft that would make a post with neither text nor
// media, which callers must reject. A blog's media does not count.
func (d *PostDraft) IsEmpty() bool {
	_, image, video := d.Media()
	return strings.TrimSpace(d.Content) == "" && image == "" && video == ""
}

// Media resolves the post kind and the single media reference allowed for it.
// Blogs never carry media and an image wins over a video.
func (d *PostDraft) Media() (kind PostKind, image string, video string) {
	if d.Blog {
		return PostKindBlog, "", ""
	}
	if d.Image != "" {
		return PostKindRegular, d.Image, ""
	}
	return PostKindRegular, "", d.Video
}

func (p *Post) OwnedBy(userID string) bool {
	return userID != "" && p.Author.ID == userID
}

func (p *Post) IsBlog() bool {
	return p.Kind == PostKindBlog
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	post := *p
	if p.Comments != nil {
		post.Comments = make([]*Comment, 0, len(p.Comments))
		for _, c := range p.Comments {
			if c == nil {
				continue
			}
			comment := *c
			post.Comments = append(post.Comments, &comment)
		}
	}
	return &post
}

func (p *Post) Format(userID string, liked bool) *PostFormatted {
	post := p.Clone()
	author := post.Author
	comments := post.Comments
	if comments == nil {
		comments = []*Comment{}
	}
	image, video := post.Image, post.Video
	if post.IsBlog() {
		image, video = "", ""
	}
	return &PostFormatted{
		ID:                 post.ID,
		Author:             &author,
		Timestamp:          post.Timestamp,
		CreatedOn:          post.CreatedOn,
		Content:            post.Content,
		Kind:               post.Kind,
		Image:              image,
		Video:              video,
		LikeCount:          post.LikeCount,
		CommentCount:       post.CommentCount,
		ShareCount:         post.ShareCount,
		Comments:           comments,
		Tags:               HashtagsOf(post.Content),
		OwnedByCurrentUser: post.OwnedBy(userID),
		LikedByCurrentUser: liked,
	}
}
