package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aidriven/todo-backend/auth"
)

func guardedApp(tokens *auth.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	return app
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30*time.Minute, nil)
	app := guardedApp(tokens)

	token, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "user-123" {
		t.Fatalf("expected resolved user id in locals, got %q", body)
	}
}

func TestUserIDUsesTypedKey(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30*time.Minute, nil)

	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		// a plain string key must not reach the guard's locals entry
		if c.Locals("user_id") != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(UserID(c))
	})

	token, err := tokens.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "user-123" {
		t.Fatalf("expected resolved user id, got %q", body)
	}
}

func TestRequireAuthRejectsBadCredentials(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30*time.Minute, nil)
	app := guardedApp(tokens)

	forged, err := auth.NewTokenService("other-secret", 30*time.Minute, nil).Issue("user-123")
	if err != nil {
		t.Fatalf("issue forged: %v", err)
	}

	expiredClock := time.Now().Add(-2 * time.Hour)
	expired, err := auth.NewTokenService("test-secret", time.Minute, func() time.Time { return expiredClock }).Issue("user-123")
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"forged token", "Bearer " + forged},
		{"expired token", "Bearer " + expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.StatusCode)
			}
		})
	}
}
