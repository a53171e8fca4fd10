package handlers

import (
	"errors"
	"io"

	request "print3d_quote/internal/adapter/http/dto/request"
	"print3d_quote/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// authSource collects the identity signals of a request. Body values win over
// the email and admin query parameters.
func authSource(c *gin.Context, body request.AuthFields) entities.AuthSource {
	return entities.AuthSource{
		BodyEmail:  body.Email,
		BodyAdmin:  body.AdminFlag(),
		QueryEmail: c.Query("email"),
		QueryAdmin: c.Query("admin"),
	}
}

// bindOptionalJSON binds the body when there is one. An empty body is not an error.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
