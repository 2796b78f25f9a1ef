package service

import (
	"errors"
	"strings"

	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

// SmartphoneRepository is the aggregate contract SmartphoneService runs on.
type SmartphoneRepository interface {
	GetAll() ([]*models.Smartphone, error)
	GetByID(id int64) (*models.Smartphone, error)
	Create(s *models.Smartphone) (int64, error)
	Update(s *models.Smartphone) (int64, error)
	Remove(id int64) (bool, error)
	Search(modelName, storage string) ([]*models.Smartphone, error)
	SearchWithPaging(modelName, storage string, currentPage, pageSize int) (models.PaginationResult[*models.Smartphone], error)
}

type SmartphoneService struct {
	repo   SmartphoneRepository
	brands BrandRepository
}

func NewSmartphoneService(repo SmartphoneRepository, brands BrandRepository) *SmartphoneService {
	return &SmartphoneService{repo: repo, brands: brands}
}

func (s *SmartphoneService) GetAll() ([]*models.Smartphone, error) {
	phones, err := s.repo.GetAll()
	if err != nil {
		return nil, wrap("getting all smartphones", err)
	}
	return phones, nil
}

func (s *SmartphoneService) GetByID(id int64) (*models.Smartphone, error) {
	if id <= 0 {
		return nil, invalid("id", "Smartphone ID must be greater than 0")
	}
	phone, err := s.repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("getting smartphone", err)
	}
	return phone, nil
}

// validate rejects bad input before any store write.
func (s *SmartphoneService) validate(p *models.Smartphone) error {
	p.ModelName = strings.TrimSpace(p.ModelName)
	if p.ModelName == "" {
		return invalid("modelName", "Model name is required")
	}
	if p.Price <= 0 {
		return invalid("price", "Invalid price")
	}
	if p.Stock <= 0 {
		return invalid("stock", "Invalid stock")
	}
	if p.BrandID != nil {
		if _, err := s.brands.GetByID(*p.BrandID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return invalid("brandId", "Brand not found")
			}
			return wrap("checking brand", err)
		}
	}
	return nil
}

// Create stores a new smartphone. Any client-supplied id is discarded so
// the store assigns the identity.
func (s *SmartphoneService) Create(p *models.Smartphone) (int64, error) {
	if err := s.validate(p); err != nil {
		return 0, err
	}
	p.ID = 0
	id, err := s.repo.Create(p)
	if err != nil {
		return 0, wrap("creating smartphone", err)
	}
	return id, nil
}

// Update loads the current row, copies the mutable fields onto it and
// persists. The repository re-reads the row under lock before writing.
func (s *SmartphoneService) Update(p *models.Smartphone) (int64, error) {
	if p.ID <= 0 {
		return 0, invalid("id", "Smartphone ID must be greater than 0")
	}
	current, err := s.GetByID(p.ID)
	if err != nil {
		return 0, err
	}
	if err := s.validate(p); err != nil {
		return 0, err
	}

	current.BrandID = p.BrandID
	current.ModelName = p.ModelName
	current.Storage = p.Storage
	current.Color = p.Color
	current.Price = p.Price
	current.Stock = p.Stock
	current.ReleaseDate = p.ReleaseDate

	affected, err := s.repo.Update(current)
	if err != nil {
		return 0, wrap("updating smartphone", err)
	}
	if affected == 0 {
		return 0, ErrNotFound
	}
	return affected, nil
}

func (s *SmartphoneService) Delete(id int64) error {
	if id <= 0 {
		return invalid("id", "Smartphone ID must be greater than 0")
	}
	removed, err := s.repo.Remove(id)
	if err != nil {
		return wrap("deleting smartphone", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *SmartphoneService) Search(modelName, storage string) ([]*models.Smartphone, error) {
	phones, err := s.repo.Search(strings.TrimSpace(modelName), strings.TrimSpace(storage))
	if err != nil {
		return nil, wrap("searching smartphones", err)
	}
	return phones, nil
}

func (s *SmartphoneService) SearchWithPaging(modelName, storage string, currentPage, pageSize int) (models.PaginationResult[*models.Smartphone], error) {
	currentPage, pageSize = normalizePaging(currentPage, pageSize)
	result, err := s.repo.SearchWithPaging(strings.TrimSpace(modelName), strings.TrimSpace(storage), currentPage, pageSize)
	if err != nil {
		return result, wrap("searching smartphones with pagination", err)
	}
	return result, nil
}
