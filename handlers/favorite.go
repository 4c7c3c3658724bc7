package handlers

import (
	"net/http"

	"github.com/slicycode/file-drive/utils"

	"github.com/gin-gonic/gin"
)

func ToggleFavorite(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	favorited, err := getServices().Favorite.ToggleFavorite(c.Request.Context(), callerToken(c), fileID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"favorited": favorited})
}

func ListFavorites(c *gin.Context) {
	orgID := c.Query("org_id")
	if orgID == "" {
		utils.Error(c, http.StatusBadRequest, "org_id is required")
		return
	}

	favorites, err := getServices().Favorite.ListFavorites(c.Request.Context(), callerToken(c), orgID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"favorites": favorites})
}
