package authorization

import (
	"log"
	"os"
	"time"

	"mediflow/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenHeader carries the signed token on every authenticated request.
const TokenHeader = "x-auth-token"

const tokenLifetime = 12 * time.Hour

type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "mediflow-dev-secret"
	}
	return []byte(s)
}

func GenerateJWT(userID, name, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func ParseJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

/*
* Read the token from the x-auth-token header
* Reject with 401 when missing or invalid
* On success attach userId, name and role to the context
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(util.HTTPStatus(util.ErrUnauthorized), util.FailedResponse(util.UnauthorizedError(util.NO_TOKEN_PROVIDED)))
			return
		}
		claims, err := ParseJWT(tokenString)
		if err != nil {
			log.Println("Error while parsing token:", err)
			c.AbortWithStatusJSON(util.HTTPStatus(util.ErrUnauthorized), util.FailedResponse(util.UnauthorizedError(util.TOKEN_IS_NOT_VALID)))
			return
		}
		c.Set("userId", claims.UserID)
		c.Set("name", claims.Name)
		c.Set("role", claims.Role)
		c.Next()
	}
}

/*
* Look up the caller role in the policy table
* Reject with 403 when the capability is missing
 */
func Authorize(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !Can(role, resource, action) {
			c.AbortWithStatusJSON(util.HTTPStatus(util.ErrForbidden), util.FailedResponse(util.ForbiddenError(util.INSUFFICIENT_PERMISSIONS)))
			return
		}
		c.Next()
	}
}
