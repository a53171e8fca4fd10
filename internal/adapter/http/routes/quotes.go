package routes

import (
	"print3d_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathUploads = "/uploads"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, uploadHandler *handlers.UploadHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/amount", quoteHandler.UpdateQuoteAmount)
		quotes.POST("/:id/notice", quoteHandler.SendQuoteNotice)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}

	rg.POST(PathUploads, uploadHandler.UploadFiles)
}
