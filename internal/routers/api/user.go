package api

import (
	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/middleware"
	"pujo-gallery/internal/service"
	"pujo-gallery/pkg/app"
	"pujo-gallery/pkg/convert"
	"pujo-gallery/pkg/errcode"
)

func (s *Server) VerifyUser(c *gin.Context) {
	param := service.UserVerifyReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		bindErrorResponse(response, errs)
		return
	}

	amount := convert.StrTo(param.Amount.String()).MustFloat64()
	v, err := s.store.VerifyUser(c.Request.Context(), middleware.UserFrom(c).ID, amount)
	if err != nil {
		toErrorResponse(response, "service.VerifyUser", err, errcode.VerifyUserFailed)
		return
	}
	response.ToResponse(v)
}

func (s *Server) GetVerification(c *gin.Context) {
	v := s.store.Verification(c.Request.Context(), middleware.UserFrom(c).ID)
	app.NewResponse(c).ToResponse(v)
}
