package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/models"
)

type AccountInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     int    `json:"role" binding:"required"`
	IsActive bool   `json:"isActive"`
}

// GetAllAccounts is the handler for GET /api/accounts (admin only).
func (h *Handlers) GetAllAccounts(c *gin.Context) {
	accounts, err := h.Accounts.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccountByID is the handler for GET /api/accounts/:id (admin only).
func (h *Handlers) GetAccountByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	account, err := h.Accounts.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// CreateAccount is the handler for POST /api/accounts (admin only).
func (h *Handlers) CreateAccount(c *gin.Context) {
	var input AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	account := &models.SystemAccount{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     models.Role(input.Role),
		IsActive: input.IsActive,
	}

	id, err := h.Accounts.Create(account)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Created successfully", "accountId": id})
}

// UpdateAccount is the handler for PUT /api/accounts/:id (admin only).
func (h *Handlers) UpdateAccount(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var input AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	account := &models.SystemAccount{
		ID:       id,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     models.Role(input.Role),
		IsActive: input.IsActive,
	}

	if _, err := h.Accounts.Update(account); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated resource successfully"})
}

// DeleteAccount is the handler for DELETE /api/accounts/:id (admin only).
func (h *Handlers) DeleteAccount(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Accounts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delete resource successfully"})
}
