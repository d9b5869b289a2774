package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/httpresp"
	"github.com/BruksfildServices01/accounts-api/internal/middleware"
	ucAccount "github.com/BruksfildServices01/accounts-api/internal/usecase/account"
)

type MeHandler struct {
	getUser       *ucAccount.GetUser
	listProfiles  *ucAccount.ListRoleProfiles
	attachAddress *ucAccount.AttachAddress
	uploadPicture *ucAccount.UploadProfilePicture
}

// NewMeHandler accepts a nil uploadPicture when media storage is off.
func NewMeHandler(
	getUser *ucAccount.GetUser,
	listProfiles *ucAccount.ListRoleProfiles,
	attachAddress *ucAccount.AttachAddress,
	uploadPicture *ucAccount.UploadProfilePicture,
) *MeHandler {
	return &MeHandler{
		getUser:       getUser,
		listProfiles:  listProfiles,
		attachAddress: attachAddress,
		uploadPicture: uploadPicture,
	}
}

type AttachAddressRequest struct {
	AddressID uint `json:"address_id" binding:"required"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.getUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_user")
		return
	}

	profiles, err := h.listProfiles.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_profiles")
		return
	}

	httpresp.OK(c, gin.H{
		"user":     userJSON(user),
		"profiles": profiles,
	})
}

func (h *MeHandler) ListProfiles(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	profiles, err := h.listProfiles.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_profiles")
		return
	}

	httpresp.List(c, profiles)
}

func (h *MeHandler) UpdateAddress(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AttachAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	user, err := h.attachAddress.Execute(c.Request.Context(), userID, req.AddressID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_attach_address")
		return
	}

	httpresp.OK(c, gin.H{"user": userJSON(user)})
}

func (h *MeHandler) UploadPicture(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.uploadPicture == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "media_disabled", "Armazenamento de imagens desativado.")
		return
	}

	fh, err := c.FormFile("picture")
	if err != nil {
		httperr.BadRequest(c, "missing_picture", "Envie a imagem no campo picture.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_picture", "Imagem inválida.")
		return
	}
	defer f.Close()

	profile, err := h.uploadPicture.Execute(c.Request.Context(), userID, c.Param("role"), f)
	if err != nil {
		httperr.FromError(c, err, "failed_to_upload_picture")
		return
	}

	httpresp.OK(c, profile)
}
