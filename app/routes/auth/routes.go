package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	// Public routes
	authGroup.Post("/register", RegisterAPI)
	authGroup.Post("/login", LoginAPI)
	authGroup.Post("/logout", LogoutAPI)

	// Protected routes
	authGroup.Use(AuthMiddleware)
	authGroup.Get("/profile", GetProfileAPI)
	authGroup.Put("/profile", UpdateProfileAPI)
	authGroup.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the caller's identity on the
// request context. Every gated handler reads the identity from locals,
// never from ambient state.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		Username:  claims.Username,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_role", user.Role)
	c.Locals("user", user)

	return c.Next()
}

// AdminOnly rejects authenticated non-admin callers.
func AdminOnly(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}
	if user.Role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Admin access required"})
	}
	return c.Next()
}

// CurrentUser returns the authenticated identity set by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
