package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/slavikovics/EducationalSystem-sub000/configs"
	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// UserID pulls the authenticated user's id out of the JWT claims set by
// Protected().
func UserID(c *fiber.Ctx) uint {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return uint(claims["user_id"].(float64))
}

func Role(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["role"].(string)
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Role(c) != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}

// TutorRequired admits tutors and admins; admins can do everything a tutor
// can.
func TutorRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		if role != models.RoleTutor && role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Tutor access required",
			})
		}
		return c.Next()
	}
}

// NotBlocked rejects requests from accounts an admin has blocked since the
// token was issued. Tokens outlive a block, so this has to hit the database.
func NotBlocked() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.Select("is_blocked").First(&user, "id = ?", UserID(c)).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account no longer exists"})
		}
		if user.IsBlocked {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is blocked"})
		}
		return c.Next()
	}
}
