package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/models"
)

type BrandInput struct {
	BrandName   string  `json:"brandName" binding:"required"`
	Country     *string `json:"country"`
	FoundedYear *int    `json:"foundedYear"`
	Website     *string `json:"website"`
}

// GetAllBrands is the handler for GET /api/brands.
func (h *Handlers) GetAllBrands(c *gin.Context) {
	brands, err := h.Brands.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// GetBrandByID is the handler for GET /api/brands/:id.
func (h *Handlers) GetBrandByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	brand, err := h.Brands.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// CreateBrand is the handler for POST /api/brands.
func (h *Handlers) CreateBrand(c *gin.Context) {
	var input BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	brand := &models.Brand{
		BrandName:   input.BrandName,
		Country:     input.Country,
		FoundedYear: input.FoundedYear,
		Website:     input.Website,
	}

	id, err := h.Brands.Create(brand)
	if err != nil {
		respondError(c, err)
		return
	}
	brand.ID = id

	c.JSON(http.StatusCreated, gin.H{"message": "Created successfully", "brandId": id})
}

// UpdateBrand is the handler for PUT /api/brands/:id.
func (h *Handlers) UpdateBrand(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var input BrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	brand := &models.Brand{
		ID:          id,
		BrandName:   input.BrandName,
		Country:     input.Country,
		FoundedYear: input.FoundedYear,
		Website:     input.Website,
	}

	if _, err := h.Brands.Update(brand); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated resource successfully"})
}

// DeleteBrand is the handler for DELETE /api/brands/:id.
// Deleting a brand cascades to its smartphones.
func (h *Handlers) DeleteBrand(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Brands.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delete resource successfully"})
}

// SearchBrands is the handler for GET /api/brands/search?name=&country=.
func (h *Handlers) SearchBrands(c *gin.Context) {
	brands, err := h.Brands.Search(c.Query("name"), c.Query("country"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// GetBrandsWithPaging is the handler for GET /api/brands/paging/:page/:size.
func (h *Handlers) GetBrandsWithPaging(c *gin.Context) {
	page, _ := strconv.Atoi(c.Param("page"))
	size, _ := strconv.Atoi(c.Param("size"))

	result, err := h.Brands.GetAllWithPaging(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
