package api

import (
	"context"

	"github.com/limbo/habitgrid/pkg/entity"
	jwtservice "github.com/limbo/habitgrid/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
}

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
