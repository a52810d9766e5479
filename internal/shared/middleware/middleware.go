package middleware

import (
	"net/http"
	"strings"

	"cricverse/internal/customers"
	"cricverse/internal/shared/config"
	"cricverse/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JWTAuth creates a JWT authentication middleware
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(config.Load())
}

// JWTAuthWithConfig creates a JWT authentication middleware with config
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Authorization header is required", nil, nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil, nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})

		if err != nil || !token.Valid {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
				response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid token type", nil, nil)
				c.Abort()
				return
			}
			c.Set("customer_id", claims["customer_id"])
			c.Set("customer_email", claims["email"])
			c.Set("customer_role", claims["role"])
		}

		c.Next()
	}
}

// RequireRole middleware checks if the customer has the required role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("customer_role")
		if !exists {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "customer role not found in context", nil, nil)
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			response.RespondJSON(c, "error", http.StatusForbidden, "Insufficient permissions", nil, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin middleware that requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(string(customers.RoleAdmin))
}

// CustomerID extracts the authenticated customer id set by JWTAuth.
func CustomerID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("customer_id")
	if !exists {
		return uuid.Nil, false
	}

	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
