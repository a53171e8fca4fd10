package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "print3d_quote/internal/adapter/http/dto/request"
	response "print3d_quote/internal/adapter/http/dto/response"
	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for 3D print quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	auth    usecase.IAuthorizationService
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, auth usecase.IAuthorizationService) *QuoteHandler {
	return &QuoteHandler{usecase: uc, auth: auth}
}

// SubmitQuote uploads the files of a customer request and creates its quote.
//
// Responds 201 when a quote was created, 200 when no file became an asset.
//
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SubmitQuoteRequest  true  "Quote request"
// @Success      201      {object}  response.SubmitQuoteResponse
// @Success      200      {object}  response.SubmitQuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input, files := payload.ToDomain()
	result, err := h.usecase.Submit(c.Request.Context(), input, files)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	status := http.StatusOK
	if result.Quote != nil {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromSubmitResult(result))
}

// ListQuotes lists the caller's quotes, or every quote for an administrator.
//
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Param        email   query     string  false  "Requester email"
// @Param        admin   query     string  false  "Admin flag"
// @Param        status  query     string  false  "pending, quoted or completed"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  response.QuoteListResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var status entities.QuoteStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		parsed, ok := entities.ParseQuoteStatus(strings.ToLower(raw))
		if !ok {
			c.JSON(errInvalidStatus.HTTPStatus, errInvalidStatus.ToHTTPError())
			return
		}
		status = parsed
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(errInvalidLimit.HTTPStatus, errInvalidLimit.ToHTTPError())
			return
		}
		limit = n
	}

	auth := h.auth.ExtractAuthContext(authSource(c, request.AuthFields{}))
	list, err := h.usecase.List(c.Request.Context(), auth, status, limit)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteList(list))
}

// GetQuote returns a single quote to its owner or an administrator.
//
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id     path      string  true   "Draft order id"
// @Param        email  query     string  false  "Requester email"
// @Param        admin  query     string  false  "Admin flag"
// @Success      200    {object}  response.QuoteResponse
// @Failure      403    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	auth := h.auth.ExtractAuthContext(authSource(c, request.AuthFields{}))
	quote, err := h.usecase.Get(c.Request.Context(), c.Param("id"), auth)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuoteAmount records the administrator's price for a quote.
//
// @Summary      Set the quoted amount
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Draft order id"
// @Param        payload  body      request.UpdateQuoteAmountRequest  true  "Amount"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes/{id}/amount [patch]
func (h *QuoteHandler) UpdateQuoteAmount(c *gin.Context) {
	var payload request.UpdateQuoteAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	auth := h.auth.ExtractAuthContext(authSource(c, payload.AuthFields))
	if !auth.IsAdmin {
		c.JSON(errAdminRequired.HTTPStatus, errAdminRequired.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateQuoteAmount(c.Request.Context(), c.Param("id"), entities.QuoteAmountUpdate{
		Amount:      payload.Amount.String(),
		Note:        payload.Note,
		SenderEmail: auth.Email,
	})
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SendQuoteNotice asks the platform to email the invoice to the customer.
//
// @Summary      Send the quote notice
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string              true   "Draft order id"
// @Param        payload  body      request.AuthFields  false  "Identity"
// @Success      200      {object}  response.QuoteResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes/{id}/notice [post]
func (h *QuoteHandler) SendQuoteNotice(c *gin.Context) {
	var payload request.AuthFields
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	auth := h.auth.ExtractAuthContext(authSource(c, payload))
	quote, err := h.usecase.SendNotice(c.Request.Context(), c.Param("id"), auth)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// DeleteQuote removes a quote. Owners may delete their own quotes.
//
// @Summary      Delete a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string              true   "Draft order id"
// @Param        payload  body      request.AuthFields  false  "Identity"
// @Success      200      {object}  response.DeleteQuoteResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	var payload request.AuthFields
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	auth := h.auth.ExtractAuthContext(authSource(c, payload))
	deletedID, err := h.usecase.Delete(c.Request.Context(), c.Param("id"), auth)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.DeleteQuoteResponse{DeletedID: deletedID})
}
