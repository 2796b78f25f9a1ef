package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/config"
	"github.com/smokequit/smokequit-api/internal/service"
)

// Handlers holds all dependencies the REST adapter needs.
type Handlers struct {
	Config      *config.Config
	Accounts    *service.AccountService
	Brands      *service.BrandService
	Smartphones *service.SmartphoneService
	Coaches     *service.CoachService
	Chats       *service.ChatService
}

// respondError translates service failures into the JSON error envelope.
// Codes follow the existing client contract: HB40001 validation, SP40401
// not found, SP40901 conflict, SP50001 everything else.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errorCode": "HB40001", "message": ve.Message})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"errorCode": "SP40401", "message": "Resource not found"})
	case errors.Is(err, service.ErrEmailInUse), errors.Is(err, service.ErrCoachHasChats):
		c.JSON(http.StatusConflict, gin.H{"errorCode": "SP40901", "message": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"errorCode": "SP50001", "message": "Internal Server Error"})
	}
}

// bindError is the envelope for request-shape failures caught by binding.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errorCode": "HB40001", "message": err.Error()})
}
