package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/accounts-api/internal/httperr"
	"github.com/BruksfildServices01/accounts-api/internal/middleware"
	"github.com/BruksfildServices01/accounts-api/internal/models"
	ucAccount "github.com/BruksfildServices01/accounts-api/internal/usecase/account"
)

type AddressHandler struct {
	createAddress *ucAccount.CreateAddress
	deleteAddress *ucAccount.DeleteAddress
}

func NewAddressHandler(
	createAddress *ucAccount.CreateAddress,
	deleteAddress *ucAccount.DeleteAddress,
) *AddressHandler {
	return &AddressHandler{
		createAddress: createAddress,
		deleteAddress: deleteAddress,
	}
}

type CreateAddressRequest struct {
	Address    string  `json:"address"`
	Address2   *string `json:"address2"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
	Phone      *string `json:"phone"`
}

func (h *AddressHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	address, err := h.createAddress.Execute(c.Request.Context(), actorID, &models.Address{
		Address:    req.Address,
		Address2:   req.Address2,
		District:   req.District,
		City:       req.City,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_address")
		return
	}

	c.JSON(http.StatusCreated, address)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	addressID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteAddress.Execute(c.Request.Context(), actorID, addressID); err != nil {
		httperr.FromError(c, err, "failed_to_delete_address")
		return
	}

	c.Status(http.StatusNoContent)
}
