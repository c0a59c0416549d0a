package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/model"
)

const (
	HeaderUserID     = "X-User-Id"
	HeaderUserName   = "X-User-Name"
	HeaderUserAvatar = "X-User-Avatar"

	defaultAvatar = "/placeholder.svg"
)

// CurrentUser resolves who is acting. There is no authentication, a request
// without X-User-Id acts as the configured default user.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := conf.AppSetting
		user := &model.Author{
			ID:     strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Name:   strings.TrimSpace(c.GetHeader(HeaderUserName)),
			Avatar: strings.TrimSpace(c.GetHeader(HeaderUserAvatar)),
		}
		if user.ID == "" || user.ID == s.CurrentUserId {
			user.ID = s.CurrentUserId
			if user.Name == "" {
				user.Name = s.CurrentUserName
			}
			if user.Avatar == "" {
				user.Avatar = s.CurrentUserAvatar
			}
		}
		if user.Name == "" {
			user.Name = user.ID
		}
		if user.Avatar == "" {
			user.Avatar = defaultAvatar
		}
		c.Set("USER", user)
		c.Next()
	}
}

func UserFrom(c *gin.Context) *model.Author {
	if u, exists := c.Get("USER"); exists {
		if user, ok := u.(*model.Author); ok {
			return user
		}
	}
	return &model.Author{ID: conf.AppSetting.CurrentUserId}
}
