package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/service"
	"pujo-gallery/pkg/app"
	"pujo-gallery/pkg/errcode"
	"pujo-gallery/pkg/richtext"
)

func (s *Server) FormatText(c *gin.Context) {
	param := service.TextFormatReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		bindErrorResponse(response, errs)
		return
	}

	sel := richtext.Selection{Start: param.Start, End: param.End}
	text, sel, err := richtext.Apply(s.formatter, param.Command, param.Text, sel, param.Arg)
	if errors.Is(err, richtext.ErrUnknownCommand) {
		response.ToErrorResponse(errcode.InvalidParams.WithDetails("unknown command " + param.Command))
		return
	} else if err != nil {
		toErrorResponse(response, "richtext.Apply", err, errcode.FormatTextFailed)
		return
	}

	response.ToResponse(gin.H{
		"text":      text,
		"selection": sel,
	})
}
