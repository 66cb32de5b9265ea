package middlewares

import (
	"errors"
	"hbs/src/db"
	"hbs/src/models"
	"hbs/src/types"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func unauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
}

// AuthMiddleware verifies the bearer token and loads the caller, creating the
// user row from the token claims the first time a subject is seen.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	reqToken, found := strings.CutPrefix(bearerToken, "Bearer ")
	if !found || strings.TrimSpace(reqToken) == "" {
		unauthorized(ctx)
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			log.Printf("token error: %s\n", err.Error())
		}
		unauthorized(ctx)
		return
	}
	if !tkn.Valid || claims.Subject == "" {
		unauthorized(ctx)
		return
	}

	user, err := upsertUser(db.GetDb(), claims)
	if err != nil {
		log.Printf("[Auth] Could not load user %s: %s\n", claims.Subject, err.Error())
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load user"})
		return
	}
	ctx.Set("user", user)
	ctx.Set("id", user.ID)
	ctx.Set("email", user.Email)
	ctx.Set("role", string(user.Role))
}

func upsertUser(gdb *gorm.DB, claims *types.Claims) (*models.User, error) {
	var user models.User
	err := gdb.
		Where(models.User{ID: claims.Subject}).
		Attrs(models.User{
			Username: claims.Username,
			Email:    claims.Email,
			Image:    claims.Image,
			Role:     types.ROLE_USER,
		}).
		FirstOrCreate(&user).
		Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RequireOwner admits only callers holding the hotel owner role.
func RequireOwner(ctx *gin.Context) {
	if types.Role(ctx.GetString("role")) != types.ROLE_ADMIN {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": types.ErrNotOwner.Error()})
		return
	}
}

// CurrentUser returns the user loaded by AuthMiddleware.
func CurrentUser(ctx *gin.Context) *models.User {
	v, ok := ctx.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
