package api

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/model"
	"pujo-gallery/pkg/app"
)

func (s *Server) Version(c *gin.Context) {
	servants := gin.H{}
	for _, v := range s.servants {
		servants[v.Name()] = v.Version().String()
	}
	settings := gin.H{
		"Name": conf.AppSetting.Name,
		"Host": conf.AppSetting.Host,
	}
	var goVersion string
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}

	response := app.NewResponse(c)
	response.ToResponse(gin.H{
		"GoVersion": goVersion,
		"Settings":  settings,
		"Servants":  servants,
		"Revision":  s.store.Revision(),
	})
}

func (s *Server) GetBadges(c *gin.Context) {
	tiers := model.BadgeTiers()
	badges := make([]*model.BadgeFormatted, 0, len(tiers))
	for _, tier := range tiers {
		badges = append(badges, tier.Format())
	}
	app.NewResponse(c).ToResponse(badges)
}
