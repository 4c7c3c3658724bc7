package handlers

import (
	"github.com/slicycode/file-drive/utils"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "file-drive",
	})
}
