package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesto/internal/api/app/dto"
	"mesto/internal/api/app/http/middleware"
	"mesto/internal/api/domain/apperr"
	"mesto/internal/api/domain/entities"
	"mesto/internal/api/ports/api"
)

const testUserID = "5f8d0d55b54764421b7156c9"

type authUseCase struct {
	mock.Mock
}

func (a *authUseCase) SignUp(ctx context.Context, in api.SignUpInput) (*entities.User, error) {
	args := a.Called(ctx, in)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (a *authUseCase) SignIn(ctx context.Context, email, password string) (*api.Session, error) {
	args := a.Called(ctx, email, password)
	s, _ := args.Get(0).(*api.Session)
	return s, args.Error(1)
}

func (a *authUseCase) Authenticate(ctx context.Context, token string) (string, error) {
	args := a.Called(ctx, token)
	return args.String(0), args.Error(1)
}

// asAppError повторяет классификацию ErrorHandler: неизвестные ошибки считаются внутренними.
func asAppError(err error) *apperr.Error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperr.Internal(err)
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			appErr := asAppError(err)
			return c.Status(appErr.Status()).JSON(dto.MessageResponse{Message: appErr.Message})
		},
	})
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body dto.MessageResponse
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body))
		return resp.StatusCode, body.Message
	}
	return resp.StatusCode, string(raw)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(a *authUseCase)
		status int
		body   string
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(a *authUseCase) {
				a.On("Authenticate", mock.Anything, "good").Return(testUserID, nil).Once()
			},
			status: http.StatusOK,
			body:   testUserID,
		},
		{
			name:   "missing header",
			status: http.StatusUnauthorized,
			body:   apperr.MsgUnauthorized,
		},
		{
			name:   "wrong scheme",
			header: "Basic dXNlcjpwYXNz",
			status: http.StatusUnauthorized,
			body:   apperr.MsgUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setup: func(a *authUseCase) {
				a.On("Authenticate", mock.Anything, "bad").Return("", errors.New("signature is invalid")).Once()
			},
			status: http.StatusUnauthorized,
			body:   apperr.MsgUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &authUseCase{}
			if tt.setup != nil {
				tt.setup(auth)
			}

			app := newApp()
			app.Get("/", func(c fiber.Ctx) error {
				return c.SendString(middleware.UserID(c))
			}, middleware.NewAuthMiddleware(auth))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			status, body := send(t, app, req)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
			auth.AssertExpectations(t)
		})
	}
}

func TestValidateBody(t *testing.T) {
	handled := 0
	app := newApp()
	app.Post("/cards", func(c fiber.Ctx) error {
		handled++
		req, err := middleware.Body[dto.CreateCardRequest](c)
		if err != nil {
			return err
		}
		return c.SendString(req.Name)
	}, middleware.ValidateBody[dto.CreateCardRequest](dto.NewValidator()))

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{
			name:   "valid",
			body:   `{"name":"Архыз","link":"https://example.com/a.jpg"}`,
			status: http.StatusOK,
			want:   "Архыз",
		},
		{
			name:   "several violations",
			body:   `{"name":"a","link":"not a url"}`,
			status: http.StatusBadRequest,
			want:   apperr.MsgBadRequest + ": name (cardname), link (link)",
		},
		{
			name:   "missing fields",
			body:   `{}`,
			status: http.StatusBadRequest,
			want:   apperr.MsgBadRequest + ": name (required), link (required)",
		},
		{
			name:   "malformed json",
			body:   `{"name":`,
			status: http.StatusBadRequest,
			want:   apperr.MsgBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cards", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			handled = 0
			status, body := send(t, app, req)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, body)
			assert.Equal(t, tt.status == http.StatusOK, handled == 1, "handler runs only after the gate passes")
		})
	}
}

func TestBodyWithoutValidation(t *testing.T) {
	app := newApp()
	app.Post("/", func(c fiber.Ctx) error {
		_, err := middleware.Body[dto.CreateCardRequest](c)
		return err
	})

	status, body := send(t, app, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apperr.MsgInternal, body)
}

func TestValidateObjectID(t *testing.T) {
	handled := 0
	app := newApp()
	app.Get("/cards/:cardId", func(c fiber.Ctx) error {
		handled++
		return c.SendString(c.Params("cardId"))
	}, middleware.ValidateObjectID(dto.NewValidator(), "cardId"))

	tests := []struct {
		id     string
		status int
	}{
		{id: "64b7f0c2a1b2c3d4e5f60718", status: http.StatusOK},
		{id: "64B7F0C2A1B2C3D4E5F60718", status: http.StatusOK},
		{id: "123", status: http.StatusBadRequest},
		{id: "64b7f0c2a1b2c3d4e5f6071z", status: http.StatusBadRequest},
		{id: "64b7f0c2a1b2c3d4e5f607180", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			handled = 0
			status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/cards/"+tt.id, nil))
			assert.Equal(t, tt.status, status)
			if tt.status == http.StatusBadRequest {
				assert.Equal(t, apperr.MsgBadRequest+": cardId (objectid)", body)
				assert.Zero(t, handled)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	app := newApp()
	app.Use(middleware.NewRecoveryMiddleware())
	app.Get("/", func(fiber.Ctx) error {
		panic("boom")
	})

	status, body := send(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apperr.MsgInternal, body)
}

func TestLoggerMiddlewareRunsErrorHandlerOnce(t *testing.T) {
	calls := 0
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			calls++
			return c.Status(asAppError(err).Status()).SendString(err.Error())
		},
	})
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Get("/", func(fiber.Ctx) error {
		return apperr.New(apperr.KindConflict, apperr.MsgEmailConflict)
	})

	status, _ := send(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, 1, calls)
}
