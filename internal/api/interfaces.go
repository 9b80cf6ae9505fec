package api

import (
	jwtservice "github.com/jadebook/jadebook/pkg/jwt_service"
	"github.com/jadebook/jadebook/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.JWTClaims, error)
}
