package handlers

import (
	"net/http"
	"strconv"

	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/services"
	"github.com/slicycode/file-drive/utils"

	"github.com/gin-gonic/gin"
)

// RequestUploadSlot hands out a one-time presigned upload URL. The client
// PUTs the bytes to blob storage directly and then finalizes with CreateFile.
func RequestUploadSlot(c *gin.Context) {
	slot, err := getServices().File.RequestUploadSlot(c.Request.Context(), callerToken(c))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, slot)
}

type createFileRequest struct {
	Name     string `json:"name" binding:"required"`
	OrgID    string `json:"org_id" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
	BlobID   string `json:"blob_id" binding:"required"`
}

func CreateFile(c *gin.Context) {
	var req createFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := getServices().File.CreateFile(c.Request.Context(), callerToken(c), req.OrgID, req.Name, req.MimeType, req.BlobID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, file)
}

func ListFiles(c *gin.Context) {
	in := services.ListFilesInput{
		OrgID:         c.Query("org_id"),
		NameContains:  c.Query("q"),
		FavoritesOnly: c.Query("favorites") == "true",
		DeletedOnly:   c.Query("deleted") == "true",
	}
	if in.OrgID == "" {
		utils.Error(c, http.StatusBadRequest, "org_id is required")
		return
	}
	if rawType := c.Query("type"); rawType != "" {
		fileType, ok := models.ParseFileType(rawType)
		if !ok {
			utils.Error(c, http.StatusBadRequest, "unknown file type "+rawType)
			return
		}
		in.Type = fileType
	}

	files, err := getServices().File.ListFiles(c.Request.Context(), callerToken(c), in)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"files": files})
}

func fileIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "invalid file id")
		return 0, false
	}
	return uint(id), true
}

func SoftDeleteFile(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	err := getServices().File.SoftDelete(c.Request.Context(), callerToken(c), fileID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "file moved to trash", nil)
}

func RestoreFile(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	err := getServices().File.Restore(c.Request.Context(), callerToken(c), fileID)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "file restored", nil)
}

func GetFileURL(c *gin.Context) {
	fileID, ok := fileIDParam(c)
	if !ok {
		return
	}

	url, err := getServices().File.DownloadURL(c.Request.Context(), callerToken(c), fileID)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"url": url})
}
