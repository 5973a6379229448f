package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	Member = "Member"
	Admin  = "Admin"
)

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserSignupRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type User struct {
	UserID         string    `json:"userId" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"password_hash"`
	Kind           string    `json:"kind" db:"kind"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

func (user User) GenerateKey() string {
	return uuid.New().String()
}

func NewUser(userSignup UserSignupRequest) (User, error) {
	var user User
	userkey := user.GenerateKey()
	hashedPassword, hashErr := user.GenerateHash(userSignup.Password)
	if hashErr != nil {
		return User{}, fmt.Errorf("error hashing password %v", hashErr)
	}
	now := time.Now().UTC()
	user = User{
		UserID:         userkey,
		Username:       userSignup.Username,
		Email:          userSignup.Email,
		HashedPassword: hashedPassword,
		Kind:           Member,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return user, nil
}

func (user User) GenerateHash(password string) (string, error) {
	hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(password), 8)
	if hashErr != nil {
		return "", fmt.Errorf("error hashing password %v", hashErr)
	}

	return string(hashedPassword), nil
}

// CheckPassword compares password with the stored bcrypt hash
func (user User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
}
