package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError translates a use case error into a response.
// Unknown errors are logged and reported as internal.
func FromError(c *gin.Context, err error, fallbackCode string) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Printf("%s: %v", fallbackCode, err)
		Internal(c, fallbackCode, "Erro interno.")
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		BadRequest(c, be.Code, "Dados inválidos.")
	case errors.Is(err, ErrUniqueViolation):
		Conflict(c, be.Code, "Registro já existe.")
	case errors.Is(err, ErrNotFound):
		NotFound(c, be.Code, "Registro não encontrado.")
	default:
		BadRequest(c, be.Code, "Operação inválida.")
	}
}
