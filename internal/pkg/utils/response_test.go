package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/price-predictor/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SendError(c, err)
	})
	return app
}

func decodeError(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var payload struct {
		Error map[string]interface{} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload.Error
}

func TestSendError(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		resp, err := errorApp(fmt.Errorf("wrapped: %w", errors.ErrUnauthorized)).Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, errors.CodeUnauthorized, decodeError(t, resp.Body)["code"])
	})

	t.Run("unknown error is a 500", func(t *testing.T) {
		resp, err := errorApp(stderrors.New("boom")).Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, errors.CodeInternalServer, decodeError(t, resp.Body)["code"])
	})
}
