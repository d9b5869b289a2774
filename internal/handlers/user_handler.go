package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/middleware"
	ucAccount "github.com/BruksfildServices01/accounts-api/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	createUser      *ucAccount.CreateUser
	createSuperuser *ucAccount.CreateSuperuser
	changeUserType  *ucAccount.ChangeUserType
	deleteUser      *ucAccount.DeleteUser
}

func NewUserHandler(
	createUser *ucAccount.CreateUser,
	createSuperuser *ucAccount.CreateSuperuser,
	changeUserType *ucAccount.ChangeUserType,
	deleteUser *ucAccount.DeleteUser,
) *UserHandler {
	return &UserHandler{
		createUser:      createUser,
		createSuperuser: createSuperuser,
		changeUserType:  changeUserType,
		deleteUser:      deleteUser,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Email    string  `json:"email"`
	UserType string  `json:"user_type" binding:"required"`
	Password *string `json:"password"`
}

type ChangeUserTypeRequest struct {
	UserType string `json:"user_type" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	h.create(c, false)
}

func (h *UserHandler) CreateSuperuser(c *gin.Context) {
	h.create(c, true)
}

func (h *UserHandler) create(c *gin.Context, superuser bool) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	in := ucAccount.CreateUserInput{
		Email:    req.Email,
		UserType: req.UserType,
		Password: req.Password,
	}

	fn := h.createUser.Execute
	if superuser {
		fn = h.createSuperuser.Execute
	}

	user, err := fn(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": userJSON(user)})
}

// ======================================================
// CHANGE TYPE
// ======================================================

func (h *UserHandler) ChangeType(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req ChangeUserTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	user, err := h.changeUserType.Execute(c.Request.Context(), actorID, userID, req.UserType)
	if err != nil {
		httperr.FromError(c, err, "failed_to_change_user_type")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// ======================================================
// DELETE
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	userID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUser.Execute(c.Request.Context(), actorID, userID); err != nil {
		httperr.FromError(c, err, "failed_to_delete_user")
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}
