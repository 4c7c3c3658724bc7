package handlers

import (
	"net/http"
	"strconv"

	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/utils"

	"github.com/gin-gonic/gin"
)

func GetMe(c *gin.Context) {
	user, ok, err := getServices().User.GetMe(c.Request.Context(), callerToken(c))
	if respondServiceError(c, err) {
		return
	}
	if !ok {
		utils.Success(c, nil)
		return
	}
	utils.Success(c, user)
}

func GetUserProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || userID == 0 {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	profile, err := getServices().User.GetProfile(c.Request.Context(), uint(userID))
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, profile)
}

// Sync endpoints below are the external org-membership sync process's
// write path, guarded by the sync secret middleware.

type syncUserRequest struct {
	TokenIdentifier string `json:"token_identifier" binding:"required"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
}

func SyncCreateUser(c *gin.Context) {
	var req syncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := getServices().User.CreateUser(c.Request.Context(), req.TokenIdentifier, req.Name, req.Avatar)
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, user)
}

func SyncUpdateUser(c *gin.Context) {
	var req syncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := getServices().User.UpdateUser(c.Request.Context(), req.TokenIdentifier, req.Name, req.Avatar)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "user updated", nil)
}

type syncMembershipRequest struct {
	TokenIdentifier string `json:"token_identifier" binding:"required"`
	OrgID           string `json:"org_id" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

func (r *syncMembershipRequest) parseRole(c *gin.Context) (models.Role, bool) {
	role, ok := models.ParseRole(r.Role)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "unknown role "+r.Role)
		return "", false
	}
	return role, true
}

func SyncAddOrgMembership(c *gin.Context) {
	var req syncMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	role, ok := req.parseRole(c)
	if !ok {
		return
	}

	err := getServices().User.AddOrgMembership(c.Request.Context(), req.TokenIdentifier, req.OrgID, role)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "membership added", nil)
}

func SyncUpdateMembershipRole(c *gin.Context) {
	var req syncMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	role, ok := req.parseRole(c)
	if !ok {
		return
	}

	err := getServices().User.UpdateMembershipRole(c.Request.Context(), req.TokenIdentifier, req.OrgID, role)
	if respondServiceError(c, err) {
		return
	}
	utils.SuccessWithMessage(c, "membership role updated", nil)
}
