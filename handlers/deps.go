package handlers

import (
	"github.com/slicycode/file-drive/middleware"
	"github.com/slicycode/file-drive/services"
	"github.com/slicycode/file-drive/utils"

	"github.com/gin-gonic/gin"
)

var appServices *services.Container

func SetServices(container *services.Container) {
	appServices = container
}

func getServices() *services.Container {
	if appServices == nil {
		panic("services container is not initialized")
	}
	return appServices
}

// callerToken returns the identity token identifier set by the auth
// middleware, or empty for an unauthenticated request.
func callerToken(c *gin.Context) string {
	return c.GetString(middleware.ContextTokenIdentifier)
}

func respondServiceError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := err.(*services.AppError); ok {
		if appErr.Data != nil {
			utils.ErrorWithData(c, appErr.HTTPCode, appErr.Message, appErr.Data)
		} else {
			utils.Error(c, appErr.HTTPCode, appErr.Message)
		}
		return true
	}
	utils.Error(c, 500, "internal error")
	return true
}
