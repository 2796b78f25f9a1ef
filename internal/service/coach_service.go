package service

import (
	"errors"
	"strings"
	"time"

	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

// CoachRepository is the aggregate contract CoachService runs on.
type CoachRepository interface {
	GetAll() ([]*models.Coach, error)
	GetByID(id int64) (*models.Coach, error)
	GetByEmail(email string) (*models.Coach, error)
	HasChats(coachID int64) (bool, error)
	Create(c *models.Coach) (int64, error)
	Update(c *models.Coach) (int64, error)
	Remove(id int64) (bool, error)
	Search(fullName, email string) ([]*models.Coach, error)
	SearchWithPaging(fullName, email string, currentPage, pageSize int) (models.PaginationResult[*models.Coach], error)
	GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Coach], error)
}

type CoachService struct {
	repo CoachRepository
}

func NewCoachService(repo CoachRepository) *CoachService {
	return &CoachService{repo: repo}
}

func (s *CoachService) GetAll() ([]*models.Coach, error) {
	coaches, err := s.repo.GetAll()
	if err != nil {
		return nil, wrap("getting all coaches", err)
	}
	return coaches, nil
}

func (s *CoachService) GetByID(id int64) (*models.Coach, error) {
	if id <= 0 {
		return nil, invalid("id", "Coach ID must be greater than 0")
	}
	coach, err := s.repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("getting coach", err)
	}
	return coach, nil
}

func (s *CoachService) GetByEmail(email string) (*models.Coach, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, invalid("email", "Email is required")
	}
	coach, err := s.repo.GetByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("getting coach by email", err)
	}
	return coach, nil
}

func (s *CoachService) validate(c *models.Coach) error {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.FullName == "" {
		return invalid("fullName", "Full name is required")
	}
	if c.Email == "" {
		return invalid("email", "Email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return invalid("email", "Email is not a valid address")
	}
	return nil
}

// checkEmailFree enforces uniqueness against every coach other than ownID.
func (s *CoachService) checkEmailFree(email string, ownID int64) error {
	existing, err := s.repo.GetByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return wrap("checking coach email", err)
	}
	if existing.ID != ownID {
		return ErrEmailInUse
	}
	return nil
}

// Create stores a new coach: CreatedAt is stamped server-side in UTC and
// any client-supplied id is discarded so the store assigns the identity.
func (s *CoachService) Create(c *models.Coach) (int64, error) {
	if err := s.validate(c); err != nil {
		return 0, err
	}
	if err := s.checkEmailFree(c.Email, 0); err != nil {
		return 0, err
	}
	c.ID = 0
	c.CreatedAt = time.Now().UTC()
	id, err := s.repo.Create(c)
	if err != nil {
		return 0, wrap("creating coach", err)
	}
	return id, nil
}

func (s *CoachService) Update(c *models.Coach) (int64, error) {
	if c.ID <= 0 {
		return 0, invalid("id", "Coach ID must be greater than 0")
	}
	if err := s.validate(c); err != nil {
		return 0, err
	}
	if err := s.checkEmailFree(c.Email, c.ID); err != nil {
		return 0, err
	}
	affected, err := s.repo.Update(c)
	if err != nil {
		return 0, wrap("updating coach", err)
	}
	if affected == 0 {
		return 0, ErrNotFound
	}
	return affected, nil
}

// Delete refuses to remove a coach that still has chat history.
func (s *CoachService) Delete(id int64) error {
	if id <= 0 {
		return invalid("id", "Coach ID must be greater than 0")
	}
	hasChats, err := s.repo.HasChats(id)
	if err != nil {
		return wrap("checking coach chat history", err)
	}
	if hasChats {
		return ErrCoachHasChats
	}
	removed, err := s.repo.Remove(id)
	if err != nil {
		return wrap("deleting coach", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *CoachService) Search(fullName, email string) ([]*models.Coach, error) {
	coaches, err := s.repo.Search(strings.TrimSpace(fullName), strings.TrimSpace(email))
	if err != nil {
		return nil, wrap("searching coaches", err)
	}
	return coaches, nil
}

func (s *CoachService) SearchWithPaging(fullName, email string, currentPage, pageSize int) (models.PaginationResult[*models.Coach], error) {
	currentPage, pageSize = normalizePaging(currentPage, pageSize)
	result, err := s.repo.SearchWithPaging(strings.TrimSpace(fullName), strings.TrimSpace(email), currentPage, pageSize)
	if err != nil {
		return result, wrap("searching coaches with pagination", err)
	}
	return result, nil
}

func (s *CoachService) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Coach], error) {
	currentPage, pageSize = normalizePaging(currentPage, pageSize)
	result, err := s.repo.GetAllWithPaging(currentPage, pageSize)
	if err != nil {
		return result, wrap("getting coaches with pagination", err)
	}
	return result, nil
}
