package api

import (
	"log"

	"bluedock/config"
	"bluedock/middleware"

	"github.com/gin-gonic/gin"
)

// storageError logs a failed storage call with the request id and the staff
// user (0 when anonymous) and answers 500
func storageError(c *gin.Context, action string, err error, fallback string) {
	log.Printf("[%s] user=%d %s: %v", middleware.GetRequestID(c), middleware.GetCurrentUserID(c), action, err)
	InternalError(c, config.SafeErrorMessage(err, fallback))
}
