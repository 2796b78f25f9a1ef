package service

import (
	"errors"
	"strings"

	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

// AccountRepository is the aggregate contract AccountService runs on.
type AccountRepository interface {
	GetByLogin(email, password string) (*models.SystemAccount, error)
	GetAll() ([]*models.SystemAccount, error)
	GetByID(id int64) (*models.SystemAccount, error)
	GetByEmail(email string) (*models.SystemAccount, error)
	Create(a *models.SystemAccount) (int64, error)
	Update(a *models.SystemAccount) (int64, error)
	Remove(id int64) (bool, error)
}

type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Login matches the credentials against the store and returns the account.
// The store compares the password column directly.
func (s *AccountService) Login(email, password string) (*models.SystemAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	account, err := s.repo.GetByLogin(email, password)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, wrap("logging in", err)
	}
	return account, nil
}

func (s *AccountService) GetAll() ([]*models.SystemAccount, error) {
	accounts, err := s.repo.GetAll()
	if err != nil {
		return nil, wrap("getting all accounts", err)
	}
	return accounts, nil
}

func (s *AccountService) GetByID(id int64) (*models.SystemAccount, error) {
	if id <= 0 {
		return nil, invalid("id", "Account ID must be greater than 0")
	}
	account, err := s.repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("getting account", err)
	}
	return account, nil
}

func (s *AccountService) validate(a *models.SystemAccount) error {
	a.Username = strings.TrimSpace(a.Username)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if a.Username == "" {
		return invalid("username", "Username is required")
	}
	if a.Email == "" {
		return invalid("email", "Email is required")
	}
	if a.Password == "" {
		return invalid("password", "Password is required")
	}
	if _, ok := models.ParseRole(int(a.Role)); !ok {
		return invalid("role", "Role must be 1 (administrator), 2 (moderator), 3 (developer) or 4 (member)")
	}
	return nil
}

// Create stores a new account. Any client-supplied id is discarded so the
// store assigns the identity.
func (s *AccountService) Create(a *models.SystemAccount) (int64, error) {
	if err := s.validate(a); err != nil {
		return 0, err
	}
	if existing, err := s.repo.GetByEmail(a.Email); err == nil && existing != nil {
		return 0, ErrEmailInUse
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, wrap("checking account email", err)
	}
	a.ID = 0
	id, err := s.repo.Create(a)
	if err != nil {
		return 0, wrap("creating account", err)
	}
	return id, nil
}

func (s *AccountService) Update(a *models.SystemAccount) (int64, error) {
	if a.ID <= 0 {
		return 0, invalid("id", "Account ID must be greater than 0")
	}
	if err := s.validate(a); err != nil {
		return 0, err
	}
	if existing, err := s.repo.GetByEmail(a.Email); err == nil && existing != nil && existing.ID != a.ID {
		return 0, ErrEmailInUse
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, wrap("checking account email", err)
	}
	affected, err := s.repo.Update(a)
	if err != nil {
		return 0, wrap("updating account", err)
	}
	if affected == 0 {
		return 0, ErrNotFound
	}
	return affected, nil
}

func (s *AccountService) Delete(id int64) error {
	if id <= 0 {
		return invalid("id", "Account ID must be greater than 0")
	}
	removed, err := s.repo.Remove(id)
	if err != nil {
		return wrap("deleting account", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
