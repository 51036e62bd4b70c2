package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/internal/dto"
	"github.com/rs/zerolog/log"
)

// Recovery turns a panic into a logged 500 with a generic body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	})
}
