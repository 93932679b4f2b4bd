package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/internal/utils"
)

const LocalVisitorID = "visitor_id"

type VisitorClaims struct {
	jwt.RegisteredClaims
}

type VisitorConfig struct {
	Secret string
	TTL    time.Duration
	Secure bool
	Log    *logrus.Logger
}

func IssueVisitorToken(secret, visitorID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := VisitorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   visitorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseVisitorToken returns the visitor id carried by a valid token.
func ParseVisitorToken(secret, tokenStr string) (string, error) {
	var claims VisitorClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "invalid visitor token")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "invalid visitor id")
	}
	return claims.Subject, nil
}

// Visitor identifies the browser through a signed cookie, minting a new
// visitor id when the cookie is missing, expired or tampered with.
func Visitor(cfg VisitorConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := utils.ReadVisitorCookie(c); raw != "" {
			if id, err := ParseVisitorToken(cfg.Secret, raw); err == nil {
				c.Locals(LocalVisitorID, id)
				return c.Next()
			}
		}

		id := uuid.NewString()
		token, err := IssueVisitorToken(cfg.Secret, id, cfg.TTL)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not issue visitor token")
		}
		utils.SetVisitorCookie(c, token, cfg.TTL, cfg.Secure)
		if cfg.Log != nil {
			cfg.Log.WithField("visitor_id", id).Debug("new visitor")
		}
		c.Locals(LocalVisitorID, id)
		return c.Next()
	}
}

func VisitorIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalVisitorID).(string)
	return id
}
