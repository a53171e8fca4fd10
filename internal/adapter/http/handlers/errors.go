package handlers

import (
	"errors"
	"log"
	"net/http"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload  = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidUploadPayload = pkg.NewDomainErrorSimple("INVALID_UPLOAD_INPUT", "Invalid upload payload", http.StatusBadRequest)
	errInvalidStatus        = pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be pending, quoted or completed", http.StatusBadRequest)
	errInvalidLimit         = pkg.NewDomainErrorSimple("INVALID_LIMIT", "Limit must be a positive integer", http.StatusBadRequest)
	errAdminRequired        = pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator permission required", http.StatusForbidden)
)

// mapQuoteError translates an entities.Error kind into the HTTP error shape.
// Remote messages are never echoed to the caller.
func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrMissingEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "Email is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Email is malformed", http.StatusBadRequest)
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Access to this quote is not allowed", http.StatusForbidden)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrConfiguration):
		return pkg.NewDomainError("SERVICE_NOT_CONFIGURED", "Commerce platform is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrRemoteTransport):
		return pkg.NewDomainError("REMOTE_UNAVAILABLE", "Commerce platform is unavailable", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrRemoteProtocol):
		return pkg.NewDomainError("REMOTE_PROTOCOL_ERROR", "Commerce platform returned an error", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrRemoteOperation):
		return pkg.NewDomainError("REMOTE_REJECTED", "Commerce platform rejected the operation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrFormat):
		return pkg.NewDomainError("QUOTE_DATA_INVALID", "Quote data could not be read", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrCorruptQuote):
		return pkg.NewDomainError("QUOTE_DATA_CORRUPTED", "Quote data is corrupted", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[quote][handler] %s %s failed: %v", c.Request.Method, c.FullPath(), appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
