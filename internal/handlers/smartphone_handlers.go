package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/models"
)

type SmartphoneInput struct {
	BrandID     *int64  `json:"brandId"`
	ModelName   string  `json:"modelName" binding:"required"`
	Storage     *string `json:"storage"`
	Color       *string `json:"color"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ReleaseDate string  `json:"releaseDate"`
}

// toModel converts the input; ReleaseDate comes over the wire as a
// date-only string ("2024-01-01").
func (in *SmartphoneInput) toModel(id int64) (*models.Smartphone, error) {
	phone := &models.Smartphone{
		ID:        id,
		BrandID:   in.BrandID,
		ModelName: in.ModelName,
		Storage:   in.Storage,
		Color:     in.Color,
		Price:     in.Price,
		Stock:     in.Stock,
	}
	if in.ReleaseDate != "" {
		t, err := time.Parse("2006-01-02", in.ReleaseDate)
		if err != nil {
			return nil, err
		}
		phone.ReleaseDate = &t
	}
	return phone, nil
}

// GetAllSmartphones is the handler for GET /api/smartphones.
func (h *Handlers) GetAllSmartphones(c *gin.Context) {
	phones, err := h.Smartphones.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"smartphones": phones})
}

// GetSmartphoneByID is the handler for GET /api/smartphones/:id.
func (h *Handlers) GetSmartphoneByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	phone, err := h.Smartphones.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, phone)
}

// CreateSmartphone is the handler for POST /api/smartphones.
func (h *Handlers) CreateSmartphone(c *gin.Context) {
	var input SmartphoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	phone, err := input.toModel(0)
	if err != nil {
		bindError(c, err)
		return
	}

	id, err := h.Smartphones.Create(phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Created successfully", "smartphoneId": id})
}

// UpdateSmartphone is the handler for PUT /api/smartphones/:id.
func (h *Handlers) UpdateSmartphone(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var input SmartphoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	phone, err := input.toModel(id)
	if err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.Smartphones.Update(phone); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated resource successfully"})
}

// DeleteSmartphone is the handler for DELETE /api/smartphones/:id.
func (h *Handlers) DeleteSmartphone(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Smartphones.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delete resource successfully"})
}

// SearchSmartphones is the handler for
// GET /api/smartphones/search?modelName=&storage=.
func (h *Handlers) SearchSmartphones(c *gin.Context) {
	phones, err := h.Smartphones.Search(c.Query("modelName"), c.Query("storage"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"smartphones": phones})
}

// GetSmartphonesWithPaging is the handler for
// GET /api/smartphones/paging/:page/:size (filters apply as query params).
func (h *Handlers) GetSmartphonesWithPaging(c *gin.Context) {
	page, _ := strconv.Atoi(c.Param("page"))
	size, _ := strconv.Atoi(c.Param("size"))

	result, err := h.Smartphones.SearchWithPaging(c.Query("modelName"), c.Query("storage"), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
