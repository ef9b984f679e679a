package customers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service interface {
	Signup(req SignupRequest) (*CustomerResponse, error)
	Login(req LoginRequest) (*CustomerResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Signup(req SignupRequest) (*CustomerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	customer := &Customer{
		Name:     strings.TrimSpace(req.Name),
		Age:      req.Age,
		Gender:   req.Gender,
		Email:    email,
		Password: req.Password,
	}

	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	resp := customer.ToResponse()
	return &resp, nil
}

func (s *service) Login(req LoginRequest) (*CustomerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	customer, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if customer.Password != req.Password {
		return nil, ErrInvalidCredentials
	}

	resp := customer.ToResponse()
	return &resp, nil
}
