package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type EmployeeFinder interface {
	FindByEmail(ctx context.Context, email string) (*Employee, error)
}

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

type LoginResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
	Name        string `json:"name"`
	Role        string `json:"role"`
}

type LoginUsecase struct {
	finder    EmployeeFinder
	jwtSecret []byte
	expMin    int
}

func NewLoginUsecase(finder EmployeeFinder, jwtSecret string, expiresMinutes int) *LoginUsecase {
	if expiresMinutes <= 0 {
		expiresMinutes = 60
	}
	return &LoginUsecase{
		finder:    finder,
		jwtSecret: []byte(jwtSecret),
		expMin:    expiresMinutes,
	}
}

func (u *LoginUsecase) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	emp, err := u.finder.FindByEmail(ctx, email)
	if err != nil {
		// Hide whether email exists
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	exp := now.Add(time.Duration(u.expMin) * time.Minute)

	claims := jwt.MapClaims{
		"sub":  emp.ID,
		"name": emp.Name,
		"role": emp.Role,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: signed,
		ExpiresIn:   u.expMin * 60,
		Name:        emp.Name,
		Role:        emp.Role,
	}, nil
}
