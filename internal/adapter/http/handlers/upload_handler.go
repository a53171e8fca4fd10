package handlers

import (
	"net/http"

	request "print3d_quote/internal/adapter/http/dto/request"
	response "print3d_quote/internal/adapter/http/dto/response"
	"print3d_quote/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// UploadFiles runs a staged upload batch. Per-file failures are reported in
// the body; the status is 200 unless the batch could not start at all.
//
// @Summary      Upload files
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        payload  body      request.UploadRequest  true  "Files"
// @Success      200      {object}  response.UploadBatchResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /uploads [post]
func (h *UploadHandler) UploadFiles(c *gin.Context) {
	var payload request.UploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUploadPayload.HTTPStatus, errInvalidUploadPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.UploadBatch(c.Request.Context(), payload.ToDomain())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromUploadBatch(result))
}
