package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/dto"
)

// ErrorHandler answers 500 with the last error attached via c.Error when a
// handler recorded errors but wrote no response of its own.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", c.Errors.Last().Err))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
