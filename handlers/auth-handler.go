package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"spotshare/auth"
	"spotshare/models"
	"spotshare/repository"
)

type AuthHandler struct {
	users *repository.UserRepository
}

func NewAuthHandler(users *repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

type sessionResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// Signup handles POST /api/users
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	type signupInput struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	var input signupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "firstName, lastName, email and password are required",
		})
	}

	if _, err := h.users.GetByEmail(input.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "User already exists",
		})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return internalError(c, err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return internalError(c, err)
	}

	user := models.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		HashedPassword: hash,
	}

	if err := h.users.Create(&user); err != nil {
		return internalError(c, err)
	}

	tokenStr, err := auth.IssueToken(user.ID, user.FirstName+" "+user.LastName, user.Email)
	if err != nil {
		return internalError(c, err)
	}

	setSessionCookie(c, tokenStr)

	return c.Status(fiber.StatusCreated).JSON(sessionResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Token:     tokenStr,
	})
}

// Login handles POST /api/session
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	type loginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := h.users.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalidCredentials(c)
		}
		return internalError(c, err)
	}

	if !auth.CheckPasswordHash(input.Password, user.HashedPassword) {
		return invalidCredentials(c)
	}

	tokenStr, err := auth.IssueToken(user.ID, user.FirstName+" "+user.LastName, user.Email)
	if err != nil {
		return internalError(c, err)
	}

	setSessionCookie(c, tokenStr)

	return c.JSON(sessionResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Token:     tokenStr,
	})
}

// Logout handles DELETE /api/session
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "JWT",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logout successful"})
}

func setSessionCookie(c *fiber.Ctx, tokenStr string) {
	c.Cookie(&fiber.Cookie{
		Name:     "JWT",
		Value:    tokenStr,
		Expires:  time.Now().Add(time.Hour * 24 * 7),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Invalid credentials",
	})
}
