package service

import (
	"errors"
	"strings"
	"time"

	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

// BrandRepository is the aggregate contract BrandService runs on.
type BrandRepository interface {
	GetAll() ([]*models.Brand, error)
	GetByID(id int64) (*models.Brand, error)
	Create(b *models.Brand) (int64, error)
	Update(b *models.Brand) (int64, error)
	Remove(id int64) (bool, error)
	Search(name, country string) ([]*models.Brand, error)
	GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Brand], error)
}

type BrandService struct {
	repo BrandRepository
}

func NewBrandService(repo BrandRepository) *BrandService {
	return &BrandService{repo: repo}
}

func (s *BrandService) GetAll() ([]*models.Brand, error) {
	brands, err := s.repo.GetAll()
	if err != nil {
		return nil, wrap("getting all brands", err)
	}
	return brands, nil
}

func (s *BrandService) GetByID(id int64) (*models.Brand, error) {
	if id <= 0 {
		return nil, invalid("id", "Brand ID must be greater than 0")
	}
	brand, err := s.repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("getting brand", err)
	}
	return brand, nil
}

func (s *BrandService) validate(b *models.Brand) error {
	b.BrandName = strings.TrimSpace(b.BrandName)
	if b.BrandName == "" {
		return invalid("brandName", "Brand name is required")
	}
	if b.FoundedYear != nil {
		if *b.FoundedYear < 1800 || *b.FoundedYear > time.Now().Year() {
			return invalid("foundedYear", "Founded year is out of range")
		}
	}
	return nil
}

// Create stores a new brand. Any client-supplied id is discarded so the
// store assigns the identity.
func (s *BrandService) Create(b *models.Brand) (int64, error) {
	if err := s.validate(b); err != nil {
		return 0, err
	}
	b.ID = 0
	id, err := s.repo.Create(b)
	if err != nil {
		return 0, wrap("creating brand", err)
	}
	return id, nil
}

func (s *BrandService) Update(b *models.Brand) (int64, error) {
	if b.ID <= 0 {
		return 0, invalid("id", "Brand ID must be greater than 0")
	}
	if err := s.validate(b); err != nil {
		return 0, err
	}
	affected, err := s.repo.Update(b)
	if err != nil {
		return 0, wrap("updating brand", err)
	}
	if affected == 0 {
		return 0, ErrNotFound
	}
	return affected, nil
}

// Delete removes the brand; its smartphones cascade with it.
func (s *BrandService) Delete(id int64) error {
	if id <= 0 {
		return invalid("id", "Brand ID must be greater than 0")
	}
	removed, err := s.repo.Remove(id)
	if err != nil {
		return wrap("deleting brand", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *BrandService) Search(name, country string) ([]*models.Brand, error) {
	brands, err := s.repo.Search(strings.TrimSpace(name), strings.TrimSpace(country))
	if err != nil {
		return nil, wrap("searching brands", err)
	}
	return brands, nil
}

func (s *BrandService) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Brand], error) {
	currentPage, pageSize = normalizePaging(currentPage, pageSize)
	result, err := s.repo.GetAllWithPaging(currentPage, pageSize)
	if err != nil {
		return result, wrap("getting brands with pagination", err)
	}
	return result, nil
}
