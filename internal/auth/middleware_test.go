package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

// stubAdminChecker implements AdminChecker for middleware tests.
type stubAdminChecker struct {
	isAdmin bool
	err     error
}

func (s *stubAdminChecker) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.isAdmin, s.err
}

// runMiddleware invokes mw around a handler that records whether it ran.
func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, req *http.Request, setup func(c echo.Context)) (error, bool) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	var handlerRan bool
	err := mw(func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	})(c)

	return err, handlerRan
}

// --- RequireAPIKey Tests ---

func TestRequireAPIKey_ValidKey(t *testing.T) {
	mw := RequireAPIKey("primary-key", "public-key")

	req := httptest.NewRequest(http.MethodGet, "/v1/fishs", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer public-key")

	err, handlerRan := runMiddleware(t, mw, req, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerRan {
		t.Error("expected handler to run with a valid key")
	}
}

func TestRequireAPIKey_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "primary-key"},
		{"wrong scheme", "Basic primary-key"},
		{"wrong key", "Bearer some-other-key"},
		{"key prefix only", "Bearer primary"},
		{"key with suffix", "Bearer primary-key-extra"},
		{"empty token", "Bearer "},
	}

	mw := RequireAPIKey("primary-key")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/fishs", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			err, handlerRan := runMiddleware(t, mw, req, nil)
			assertAppError(t, err, 401)
			if handlerRan {
				t.Error("expected handler not to run")
			}
		})
	}
}

func TestRequireAPIKey_UniformRejectionMessage(t *testing.T) {
	// Missing and wrong keys must produce the same message.
	mw := RequireAPIKey("primary-key")

	reqMissing := httptest.NewRequest(http.MethodGet, "/v1/fishs", nil)
	errMissing, _ := runMiddleware(t, mw, reqMissing, nil)

	reqWrong := httptest.NewRequest(http.MethodGet, "/v1/fishs", nil)
	reqWrong.Header.Set(echo.HeaderAuthorization, "Bearer nope")
	errWrong, _ := runMiddleware(t, mw, reqWrong, nil)

	var appErr1, appErr2 *apperror.AppError
	if !errors.As(errMissing, &appErr1) || !errors.As(errWrong, &appErr2) {
		t.Fatalf("expected AppErrors, got %v and %v", errMissing, errWrong)
	}
	if appErr1.Message != appErr2.Message {
		t.Errorf("rejection messages differ: %q vs %q", appErr1.Message, appErr2.Message)
	}
}

// --- RequireUser Tests ---

func TestRequireUser_ValidCookie(t *testing.T) {
	wantID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/favorite", nil)
	req.AddCookie(&http.Cookie{Name: "user_id", Value: wantID.String()})

	var gotID uuid.UUID
	var gotOK bool
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())

	err := RequireUser()(func(c echo.Context) error {
		gotID, gotOK = UserID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotOK || gotID != wantID {
		t.Errorf("expected user id %s in context, got %s (ok=%v)", wantID, gotID, gotOK)
	}
}

func TestRequireUser_MissingCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/favorite", nil)

	err, handlerRan := runMiddleware(t, RequireUser(), req, nil)
	assertAppError(t, err, 401)
	if handlerRan {
		t.Error("expected handler not to run")
	}
}

func TestRequireUser_MalformedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/favorite", nil)
	req.AddCookie(&http.Cookie{Name: "user_id", Value: "not-a-uuid"})

	err, handlerRan := runMiddleware(t, RequireUser(), req, nil)
	assertAppError(t, err, 400)
	if handlerRan {
		t.Error("expected handler not to run")
	}
}

// --- OptionalUser Tests ---

func TestOptionalUser_WithCookie(t *testing.T) {
	wantID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/recipe/abc", nil)
	req.AddCookie(&http.Cookie{Name: "user_id", Value: wantID.String()})

	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())

	var gotID uuid.UUID
	var gotOK bool
	err := OptionalUser()(func(c echo.Context) error {
		gotID, gotOK = UserID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotOK || gotID != wantID {
		t.Errorf("expected user id %s, got %s (ok=%v)", wantID, gotID, gotOK)
	}
}

func TestOptionalUser_AnonymousPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/recipe/abc", nil)

	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())

	var gotOK bool
	err := OptionalUser()(func(c echo.Context) error {
		_, gotOK = UserID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("expected anonymous request to pass, got: %v", err)
	}
	if gotOK {
		t.Error("expected no identity in context")
	}
}

func TestOptionalUser_MalformedCookie(t *testing.T) {
	// Optional means the cookie may be absent. A cookie that is present
	// but not a UUID is a client error, same as the required variant.
	req := httptest.NewRequest(http.MethodGet, "/v1/recipe/abc", nil)
	req.AddCookie(&http.Cookie{Name: "user_id", Value: "not-a-uuid"})

	err, handlerRan := runMiddleware(t, OptionalUser(), req, nil)
	assertAppError(t, err, 400)
	if handlerRan {
		t.Error("expected handler not to run")
	}
}

// --- RequireAdmin Tests ---

func TestRequireAdmin_AdminPasses(t *testing.T) {
	mw := RequireAdmin(&stubAdminChecker{isAdmin: true})

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/fishs", nil)
	err, handlerRan := runMiddleware(t, mw, req, func(c echo.Context) {
		c.Set(contextKeyUserID, uuid.New())
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerRan {
		t.Error("expected handler to run for admin")
	}
}

func TestRequireAdmin_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		checker *stubAdminChecker
		withID  bool
	}{
		{"non-admin user", &stubAdminChecker{isAdmin: false}, true},
		{"check error", &stubAdminChecker{err: errors.New("db down")}, true},
		{"no identity in context", &stubAdminChecker{isAdmin: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/fishs", nil)
			var setup func(c echo.Context)
			if tt.withID {
				setup = func(c echo.Context) { c.Set(contextKeyUserID, uuid.New()) }
			}

			err, handlerRan := runMiddleware(t, RequireAdmin(tt.checker), req, setup)
			assertAppError(t, err, 401)
			if handlerRan {
				t.Error("expected handler not to run")
			}
		})
	}
}
