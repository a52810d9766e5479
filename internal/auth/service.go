package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"cricverse/internal/customers"
	"cricverse/internal/shared/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, customerID string, req *ChangePasswordRequest) error
}

type service struct {
	repo   Repository
	config *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		config: cfg,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// Registration always creates a plain customer; admin accounts
	// are provisioned out of band.
	customer := &customers.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  customers.RoleCustomer,
	}
	if err := customer.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	tokenPair, err := s.generateTokenPair(customer)
	if err != nil {
		return nil, err
	}

	return s.authResponse(customer, tokenPair), nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	customer, err := s.repo.GetCustomerByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !customer.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(customer)
	if err != nil {
		return nil, err
	}

	return s.authResponse(customer, tokenPair), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != "refresh" {
		return nil, ErrInvalidToken
	}

	// Verify the customer still exists before minting new tokens
	customer, err := s.repo.GetCustomerByID(ctx, claims.CustomerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	return s.generateTokenPair(customer)
}

func (s *service) ChangePassword(ctx context.Context, customerID string, req *ChangePasswordRequest) error {
	customer, err := s.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return ErrCustomerNotFound
	}

	if !customer.CheckPassword(req.CurrentPassword) {
		return ErrInvalidCredentials
	}

	if err := customer.SetPassword(req.NewPassword); err != nil {
		return err
	}

	return s.repo.UpdatePasswordHash(ctx, customerID, customer.PasswordHash)
}

func (s *service) generateTokenPair(customer *customers.Customer) (*TokenPair, error) {
	now := time.Now()

	accessClaims := JWTClaims{
		CustomerID: customer.ID.String(),
		Email:      customer.Email,
		Role:       string(customer.Role),
		Type:       "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "cricverse",
			Subject:   customer.ID.String(),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	refreshClaims := JWTClaims{
		CustomerID: customer.ID.String(),
		Email:      customer.Email,
		Role:       string(customer.Role),
		Type:       "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.RefreshExpiresIn)),
			Issuer:    "cricverse",
			Subject:   customer.ID.String(),
		},
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

func (s *service) authResponse(customer *customers.Customer, tokenPair *TokenPair) *AuthResponse {
	return &AuthResponse{
		Customer: CustomerResponse{
			ID:        customer.ID.String(),
			Name:      customer.Name,
			Email:     customer.Email,
			Phone:     customer.Phone,
			Role:      string(customer.Role),
			CreatedAt: customer.CreatedAt,
			UpdatedAt: customer.UpdatedAt,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}
}
