package routers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/expvar"
	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/middleware"
	"pujo-gallery/internal/routers/api"
)

func NewRouter(s *api.Server) *gin.Engine {
	e := gin.New()
	e.HandleMethodNotAllowed = true
	e.Use(gin.Logger())
	e.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders(middleware.HeaderUserID, middleware.HeaderUserName, middleware.HeaderUserAvatar)
	e.Use(cors.New(corsConfig))

	e.GET("/debug/vars", middleware.AllowHost(), expvar.Handler())

	// v1 group api
	r := e.Group("/v1")
	r.Use(middleware.CurrentUser())

	r.GET("/", s.Version)
	r.GET("/badges", s.GetBadges)

	postApi := r.Group("/")
	{
		postApi.GET("/posts", s.GetPostList)

		postApi.GET("/post", s.GetPost)

		postApi.POST("/post", s.CreatePost)

		postApi.DELETE("/post", s.DeletePost)

		postApi.GET("/post/like", s.GetPostLike)

		postApi.POST("/post/like", s.PostLike)

		postApi.POST("/post/comment", s.CreateComment)

		postApi.POST("/post/share", s.SharePost)

		postApi.GET("/tags", s.GetPostTags)

		postApi.GET("/search", s.Search)
	}

	userApi := r.Group("/user")
	{
		userApi.POST("/verify", s.VerifyUser)

		userApi.GET("/verification", s.GetVerification)
	}

	composeApi := r.Group("/")
	{
		composeApi.POST("/upload", s.UploadAttachment)

		composeApi.GET("/upload/status", s.GetUploadStatus)

		composeApi.POST("/compose/format", s.FormatText)
	}

	// default 404
	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code": 404,
			"msg":  "Not Found",
		})
	})

	// default 405
	e.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"code": 405,
			"msg":  "Method Not Allowed",
		})
	})

	return e
}
