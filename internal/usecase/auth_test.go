package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/prashant-tajane/qkart-frontend/internal/domain"
	"github.com/prashant-tajane/qkart-frontend/internal/usecase"
)

// ---- fakes ----

type fakeAuthService struct {
	registerCalls int
	loginCalls    int
	register      func(ctx context.Context, username, password string) error
	login         func(ctx context.Context, username, password string) (string, error)
}

func (s *fakeAuthService) Register(ctx context.Context, username, password string) error {
	s.registerCalls++
	return s.register(ctx, username, password)
}

func (s *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	s.loginCalls++
	return s.login(ctx, username, password)
}

func newAuthUsecase(svc *fakeAuthService) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(svc, slog.Default())
}

// ---- ValidateRegister ----

func TestValidateRegister_Messages(t *testing.T) {
	tests := []struct {
		name string
		in   usecase.RegisterInput
		want string
	}{
		{
			"empty username",
			usecase.RegisterInput{},
			"Username is a required field",
		},
		{
			"short username",
			usecase.RegisterInput{Username: "alice"},
			"Username must be at least 6 characters",
		},
		{
			"empty password",
			usecase.RegisterInput{Username: "alice1"},
			"Password is a required field",
		},
		{
			"short password",
			usecase.RegisterInput{Username: "alice1", Password: "12345"},
			"Password must be at least 6 characters",
		},
		{
			"missing confirm password",
			usecase.RegisterInput{Username: "alice1", Password: "123456"},
			"Confirm password is a required field",
		},
		{
			"different lengths",
			usecase.RegisterInput{Username: "alice1", Password: "123456", ConfirmPassword: "1234567"},
			"Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usecase.ValidateRegister(tt.in)
			var vErr domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if string(vErr) != tt.want {
				t.Errorf("message = %q, want %q", vErr, tt.want)
			}
		})
	}
}

func TestValidateRegister_SameLengthDifferentContent_Passes(t *testing.T) {
	// Only lengths are compared, so this passes validation.
	err := usecase.ValidateRegister(usecase.RegisterInput{
		Username:        "alice1",
		Password:        "abcdef",
		ConfirmPassword: "fedcba",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRegister_Valid(t *testing.T) {
	err := usecase.ValidateRegister(usecase.RegisterInput{
		Username:        "alice1",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ---- Register ----

func TestRegister_ValidationFailure_NoNetworkCall(t *testing.T) {
	svc := &fakeAuthService{register: func(_ context.Context, _, _ string) error { return nil }}
	u := newAuthUsecase(svc)

	err := u.Register(context.Background(), usecase.RegisterInput{Username: "alice"})
	var vErr domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if svc.registerCalls != 0 {
		t.Errorf("expected no network call, got %d", svc.registerCalls)
	}
}

func TestRegister_BackendError_Propagates(t *testing.T) {
	svcErr := &domain.APIError{StatusCode: 400, Message: "Username is already taken"}
	svc := &fakeAuthService{register: func(_ context.Context, _, _ string) error { return svcErr }}
	u := newAuthUsecase(svc)

	err := u.Register(context.Background(), usecase.RegisterInput{
		Username:        "alice1",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	if apiErr.Message != "Username is already taken" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

// ---- Login ----

func TestLogin_RequiredFields(t *testing.T) {
	svc := &fakeAuthService{login: func(_ context.Context, _, _ string) (string, error) { return "t", nil }}
	u := newAuthUsecase(svc)

	_, err := u.Login(context.Background(), usecase.LoginInput{})
	var vErr domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if string(vErr) != "Username is a required field" {
		t.Errorf("message = %q", vErr)
	}
	if svc.loginCalls != 0 {
		t.Errorf("expected no network call, got %d", svc.loginCalls)
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	svc := &fakeAuthService{login: func(_ context.Context, username, password string) (string, error) {
		if username != "alice1" || password != "secret1" {
			return "", errors.New("wrong credentials forwarded")
		}
		return "jwt-abc", nil
	}}
	u := newAuthUsecase(svc)

	token, err := u.Login(context.Background(), usecase.LoginInput{Username: "alice1", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("token = %q, want jwt-abc", token)
	}
}

// ---- CatalogState ----

func TestCatalogState_EmptyQueryRefreshesMaster(t *testing.T) {
	var s usecase.CatalogState

	full := testCatalog
	s.Apply("", full)
	if len(s.Master()) != len(full) || len(s.Visible()) != len(full) {
		t.Fatalf("full fetch must populate both lists")
	}

	filtered := full[:1]
	s.Apply("phone", filtered)
	if len(s.Visible()) != 1 {
		t.Errorf("visible = %d, want 1", len(s.Visible()))
	}
	if len(s.Master()) != len(full) {
		t.Errorf("a filtered fetch must not shrink the master list")
	}
}
