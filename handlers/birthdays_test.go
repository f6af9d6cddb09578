package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The days window is a required explicit parameter; these paths reject
// before any storage access.
func TestUpcomingBirthdays_RequiresDaysParameter(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/birthdays", Protected, UpcomingBirthdays)

	token, err := signToken(uuid.New(), "user@example.com", "user")
	require.NoError(t, err)

	tests := []struct {
		name   string
		target string
	}{
		{"missing days", "/birthdays"},
		{"negative days", "/birthdays?days=-1"},
		{"non numeric days", "/birthdays?days=soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
