package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

type stubAuthService struct {
	registerInput ports.RegisterInput
	loginEmail    string
	user          *domain.User
	err           error
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	s.registerInput = input
	if s.err != nil {
		return "", nil, s.err
	}
	return "tok-123", s.user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	s.loginEmail = email
	if s.err != nil {
		return "", nil, s.err
	}
	return "tok-123", s.user, nil
}

func (s *stubAuthService) Me(_ context.Context, _ string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newAuthContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Role: domain.RoleUser}}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(http.MethodPost, "/auth/register", `{"name":"Ann","email":"ann@example.com","password":"hunter42"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if resp.Token != "tok-123" || resp.User == nil || resp.User.ID != "u1" {
		t.Errorf("response = %+v, want token plus user", resp)
	}
	if svc.registerInput.Email != "ann@example.com" {
		t.Errorf("service received %+v", svc.registerInput)
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"A","email":"ann@example.com","password":"hunter42"}`},
		{"bad email", `{"name":"Ann","email":"not-an-email","password":"hunter42"}`},
		{"short password", `{"name":"Ann","email":"ann@example.com","password":"abc"}`},
		{"not json", `name=Ann`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(http.MethodPost, "/auth/register", tc.body)
			err := h.Register(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Errorf("err = %v, want HTTP 400", err)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{ID: "u1", Email: "ann@example.com"}}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(http.MethodPost, "/auth/login", `{"email":"ann@example.com","password":"hunter42"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if svc.loginEmail != "ann@example.com" {
		t.Errorf("service received email %q", svc.loginEmail)
	}
}

func TestLoginHandlerPropagatesCredentialError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newAuthContext(http.MethodPost, "/auth/login", `{"email":"ann@example.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestMeHandler(t *testing.T) {
	svc := &stubAuthService{user: &domain.User{ID: "u1", Email: "ann@example.com"}}
	h := NewAuthHandler(svc)

	c, rec := newAuthContext(http.MethodGet, "/auth/me", "")
	c.Set("principal", &auth.Principal{UserID: "u1", Role: domain.RoleUser})
	if err := h.Me(c); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if resp.Token != "" {
		t.Error("me response must not mint a token")
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Errorf("response user = %+v, want u1", resp.User)
	}
}
