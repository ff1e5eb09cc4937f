package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/medimatch/medimatch-backend/internal/common"
)

// respondError translates a service error into its HTTP status and a
// client-safe message. The full error is attached to the context so the
// request logger records it.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(common.HTTPStatus(err), gin.H{"message": common.Message(err)})
}
