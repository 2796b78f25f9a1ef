package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/models"
)

type CoachInput struct {
	FullName    string  `json:"fullName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Bio         *string `json:"bio"`
}

// GetAllCoaches is the handler for GET /api/coaches.
func (h *Handlers) GetAllCoaches(c *gin.Context) {
	coaches, err := h.Coaches.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

// GetCoachByID is the handler for GET /api/coaches/:id.
func (h *Handlers) GetCoachByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	coach, err := h.Coaches.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, coach)
}

// CreateCoach is the handler for POST /api/coaches.
func (h *Handlers) CreateCoach(c *gin.Context) {
	var input CoachInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	coach := &models.Coach{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Bio:         input.Bio,
	}

	id, err := h.Coaches.Create(coach)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Created successfully", "coachId": id})
}

// UpdateCoach is the handler for PUT /api/coaches/:id.
func (h *Handlers) UpdateCoach(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var input CoachInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	coach := &models.Coach{
		ID:          id,
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Bio:         input.Bio,
	}

	if _, err := h.Coaches.Update(coach); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated resource successfully"})
}

// DeleteCoach is the handler for DELETE /api/coaches/:id.
// Blocked while any chat row still references the coach.
func (h *Handlers) DeleteCoach(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Coaches.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delete resource successfully"})
}

// SearchCoaches is the handler for GET /api/coaches/search?fullName=&email=.
func (h *Handlers) SearchCoaches(c *gin.Context) {
	coaches, err := h.Coaches.Search(c.Query("fullName"), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

// GetCoachesWithPaging is the handler for
// GET /api/coaches/paging/:page/:size (fullName/email filters optional).
func (h *Handlers) GetCoachesWithPaging(c *gin.Context) {
	page, _ := strconv.Atoi(c.Param("page"))
	size, _ := strconv.Atoi(c.Param("size"))

	result, err := h.Coaches.SearchWithPaging(c.Query("fullName"), c.Query("email"), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
