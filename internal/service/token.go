package service

import "github.com/rxmart/vendormart/internal/models"

type TokenService interface {
	CreateToken(sess *models.Session) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}
