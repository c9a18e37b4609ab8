package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/malik-shaik/DevHub/models"
	"github.com/malik-shaik/DevHub/store"
	"github.com/malik-shaik/DevHub/utils"
)

// UserStore is the slice of the persistence layer the services need for
// user records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

var (
	ErrUserExists = utils.NewCustomError(http.StatusBadRequest, "User already exists")
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords, so login failures never reveal whether an email exists.
	ErrInvalidCredentials = utils.NewCustomError(http.StatusBadRequest, "Invalid credentials")
	ErrUserNotFound       = utils.NewCustomError(http.StatusNotFound, "User not found")
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type AuthService struct {
	users UserStore
	token *TokenService
}

func NewAuthService(users UserStore, token *TokenService) *AuthService {
	return &AuthService{users: users, token: token}
}

// Register creates a user with a bcrypt-hashed password and a gravatar
// derived from the email, then issues a token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return "", ErrUserExists
	}
	if err != store.ErrNotFound {
		log.Printf("Error checking existing user: %v", err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Avatar:   utils.GravatarURL(in.Email),
		Date:     time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.Printf("Error creating user: %v", err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}

	token, err := s.token.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return token, nil
}

// Login checks the credentials and issues a token on success.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err == store.ErrNotFound {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		log.Printf("Error looking up user: %v", err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.token.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return token, nil
}

// CurrentUser resolves an authenticated user id to its record. The
// password hash never leaves the model's JSON encoding.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err == store.ErrNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Printf("Error fetching user %s: %v", userID, err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Server Error")
	}
	return user, nil
}
