package i18n

import (
	"github.com/gofiber/fiber/v2"
)

const CookieName = "language"

const cookieMaxAge = 365 * 24 * 60 * 60

type SetLanguageRequest struct {
	Language string `json:"language"`
}

// Middleware: dili cookie'den, yoksa Accept-Language'den çözer ve
// istek context'ine koyar. Global/oturum state'i tutulmaz.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, ok := ParseLang(c.Cookies(CookieName))
		if !ok {
			lang = MatchAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		}
		c.SetUserContext(WithLang(c.UserContext(), lang))
		return c.Next()
	}
}

// POST /api/language
func SetLanguageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetLanguageRequest
		if err := c.BodyParser(&body); err != nil {
			return c.JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}
		if body.Language == "" {
			body.Language = string(DefaultLang)
		}

		lang, ok := ParseLang(body.Language)
		if !ok {
			return c.JSON(fiber.Map{"success": false, "error": "Invalid language"})
		}

		c.Cookie(&fiber.Cookie{
			Name:     CookieName,
			Value:    string(lang),
			Path:     "/",
			MaxAge:   cookieMaxAge,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return c.JSON(fiber.Map{"success": true, "language": lang})
	}
}

// GET /api/i18n
func TranslationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := FromContext(c.UserContext())
		return c.JSON(fiber.Map{
			"language": lang,
			"strings":  Table(lang),
		})
	}
}
