package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"anoa.com/lebenslauf/internal/entity"
	"anoa.com/lebenslauf/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminFinder looks up the operator account named in a token subject.
type AdminFinder interface {
	FindAdminByID(ctx context.Context, id string) (*entity.AdminUser, error)
}

type AuthMiddleware struct {
	admins AdminFinder
	secret string
}

func NewAuthMiddleware(admins AdminFinder, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		admins: admins,
		secret: secret,
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(m.secret), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			c.Abort()
			return
		}

		// A deleted account must not keep working until its token expires.
		if _, err := m.admins.FindAdminByID(c.Request.Context(), claims.Subject); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
			c.Abort()
			return
		}

		c.Set(response.ContextAdminID, claims.Subject)
		c.Next()
	}
}
