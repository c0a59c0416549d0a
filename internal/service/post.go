package service

import (
	"encoding/json"
	"strings"

	"pujo-gallery/internal/model"
)

type PostCreationReq struct {
	Content      string `json:"content" form:"content"`
	Image        string `json:"image" form:"image"`
	Video        string `json:"video" form:"video"`
	Blog         bool   `json:"blog" form:"blog"`
	AuthorName   string `json:"author_name" form:"author_name"`
	AuthorAvatar string `json:"author_avatar" form:"author_avatar"`
}

type PostDelReq struct {
	ID string `json:"id" form:"id" binding:"required"`
}

type PostLikeReq struct {
	ID string `json:"id" form:"id" binding:"required"`
}

type PostShareReq struct {
	ID       string `json:"id" form:"id" binding:"required"`
	Platform string `json:"platform" form:"platform"`
}

type CommentCreationReq struct {
	PostID       string `json:"post_id" form:"post_id" binding:"required"`
	Text         string `json:"text" form:"text" binding:"required"`
	AuthorName   string `json:"author_name" form:"author_name"`
	AuthorAvatar string `json:"author_avatar" form:"author_avatar"`
}

// UserVerifyReq takes the amount as a number or a numeric string.
type UserVerifyReq struct {
	Amount json.Number `json:"amount" form:"amount"`
}

type TextFormatReq struct {
	Text    string `json:"text" form:"text"`
	Command string `json:"command" form:"command" binding:"required"`
	Start   int    `json:"start" form:"start"`
	End     int    `json:"end" form:"end"`
	Arg     string `json:"arg" form:"arg"`
}

// Draft fills the author from the acting user, the request may only restyle it.
func (r *PostCreationReq) Draft(user *model.Author) *model.PostDraft {
	author := *user
	if name := strings.TrimSpace(r.AuthorName); name != "" {
		author.Name = name
	}
	if avatar := strings.TrimSpace(r.AuthorAvatar); avatar != "" {
		author.Avatar = avatar
	}
	author.Verified, author.BadgeTier = false, ""
	return &model.PostDraft{
		Author:  author,
		Content: r.Content,
		Image:   strings.TrimSpace(r.Image),
		Video:   strings.TrimSpace(r.Video),
		Blog:    r.Blog,
	}
}

func (r *CommentCreationReq) Draft(user *model.Author) *model.CommentDraft {
	author := model.CommentAuthor{
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if name := strings.TrimSpace(r.AuthorName); name != "" {
		author.Name = name
	}
	if avatar := strings.TrimSpace(r.AuthorAvatar); avatar != "" {
		author.Avatar = avatar
	}
	return &model.CommentDraft{
		Author: author,
		Text:   r.Text,
	}
}
