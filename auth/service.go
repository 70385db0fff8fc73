package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-pkgz/auth/v2"
	"github.com/go-pkgz/auth/v2/avatar"
	"github.com/go-pkgz/auth/v2/provider"
	"github.com/go-pkgz/auth/v2/token"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spotshare/config"
	"spotshare/repository"
)

const issuer = "spotshare"

// Global auth service instance
var authService *auth.Service

// SetupAuthService initializes the token service and a direct credential
// provider backed by the users table.
func SetupAuthService(db *gorm.DB) *auth.Service {
	users := repository.NewUserRepository(db)

	options := auth.Opts{
		SecretReader: token.SecretFunc(func(id string) (string, error) {
			return config.Config("JWT_SECRET"), nil
		}),
		TokenDuration:  time.Hour * 24,
		CookieDuration: time.Hour * 24 * 7,
		Issuer:         issuer,
		URL:            config.ConfigDefault("APP_URL", "http://localhost:3000"),
		AvatarStore:    avatar.NewLocalFS("/tmp/avatars"),
	}

	service := auth.NewService(options)

	service.AddDirectProvider("local", provider.CredCheckerFunc(func(identity, password string) (bool, error) {
		return validateUserCredentials(users, identity, password)
	}))

	authService = service
	return service
}

// GetAuthService returns the auth service instance.
func GetAuthService() *auth.Service {
	return authService
}

func validateUserCredentials(users *repository.UserRepository, identity, password string) (bool, error) {
	user, err := users.GetByEmail(identity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return CheckPasswordHash(password, user.HashedPassword), nil
}

// IssueToken creates a signed session token carrying the user's id.
func IssueToken(userID uint, name, email string) (string, error) {
	user := token.User{
		ID:    strconv.FormatUint(uint64(userID), 10),
		Name:  name,
		Email: email,
	}

	claims := token.Claims{
		User: &user,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  []string{issuer},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return authService.TokenService().Token(claims)
}

// ParseToken validates a session token and returns the user id it carries.
func ParseToken(tokenStr string) (uint, error) {
	if authService == nil {
		return 0, errors.New("auth service not initialized")
	}

	claims, err := authService.TokenService().Parse(tokenStr)
	if err != nil {
		return 0, err
	}
	if claims.User == nil {
		return 0, errors.New("token has no user")
	}

	userID, err := strconv.ParseUint(claims.User.ID, 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(userID), nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(hashed), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
