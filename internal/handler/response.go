package handler

import (
	"log"
	"net/http"

	"news_api/internal/middleware"
	"news_api/internal/model"

	"github.com/gin-gonic/gin"
)

func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, model.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message, code string) {
	c.JSON(status, model.APIResponse{
		Success: false,
		Message: message,
		Error:   code,
	})
}

// respondInternal logs the detailed error server-side and returns a generic
// 500 envelope; internal detail never reaches the client.
func respondInternal(c *gin.Context, err error) {
	log.Printf("ERROR [%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, "Internal server error", model.ErrCodeInternal)
}
