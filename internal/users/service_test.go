package users

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Austionian/fishy-edge/internal/apperror"
)

type mockUserRepo struct {
	findProfileFunc   func(ctx context.Context, userID uuid.UUID) (*Profile, error)
	updateProfileFunc func(ctx context.Context, req UpdateProfileRequest) error
	updateAccountFunc func(ctx context.Context, req UpdateAccountRequest) error
	updateImageFunc   func(ctx context.Context, userID uuid.UUID, imageURL string) error
	deleteFunc        func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserRepo) FindProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return m.findProfileFunc(ctx, userID)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return m.updateProfileFunc(ctx, req)
}

func (m *mockUserRepo) UpdateAccount(ctx context.Context, req UpdateAccountRequest) error {
	return m.updateAccountFunc(ctx, req)
}

func (m *mockUserRepo) UpdateImage(ctx context.Context, userID uuid.UUID, imageURL string) error {
	return m.updateImageFunc(ctx, userID, imageURL)
}

func (m *mockUserRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	return m.deleteFunc(ctx, userID)
}

func assertAppError(t *testing.T, err error, wantCode int) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != wantCode {
		t.Errorf("expected code %d, got %d", wantCode, appErr.Code)
	}
}

func int16Ptr(v int16) *int16 { return &v }
func strPtr(v string) *string { return &v }

func validProfileUpdate() UpdateProfileRequest {
	return UpdateProfileRequest{
		UserID:      uuid.New(),
		Weight:      180,
		Age:         35,
		Sex:         "Male",
		PortionSize: 8,
	}
}

func TestGetProfile_Success(t *testing.T) {
	want := &Profile{Weight: int16Ptr(150), Sex: strPtr("Female")}
	svc := NewUserService(&mockUserRepo{
		findProfileFunc: func(ctx context.Context, userID uuid.UUID) (*Profile, error) {
			return want, nil
		},
	})

	got, err := svc.GetProfile(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		findProfileFunc: func(ctx context.Context, userID uuid.UUID) (*Profile, error) {
			return nil, apperror.NewNotFound("user not found")
		},
	})

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assertAppError(t, err, 404)
}

func TestUpdateProfile_Success(t *testing.T) {
	var got UpdateProfileRequest
	svc := NewUserService(&mockUserRepo{
		updateProfileFunc: func(ctx context.Context, req UpdateProfileRequest) error {
			got = req
			return nil
		},
	})

	req := validProfileUpdate()
	if err := svc.UpdateProfile(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != req.UserID || got.Weight != 180 {
		t.Errorf("repository received wrong request: %+v", got)
	}
}

func TestUpdateProfile_RejectsInvalidSex(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		updateProfileFunc: func(ctx context.Context, req UpdateProfileRequest) error {
			t.Fatal("repository should not be called")
			return nil
		},
	})

	req := validProfileUpdate()
	req.Sex = "Other"
	assertAppError(t, svc.UpdateProfile(context.Background(), req), 400)
}

func TestUpdateProfile_RejectsNonPositiveValues(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		updateProfileFunc: func(ctx context.Context, req UpdateProfileRequest) error {
			t.Fatal("repository should not be called")
			return nil
		},
	})

	req := validProfileUpdate()
	req.Weight = 0
	assertAppError(t, svc.UpdateProfile(context.Background(), req), 400)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		updateProfileFunc: func(ctx context.Context, req UpdateProfileRequest) error {
			return apperror.NewNotFound("user not found")
		},
	})

	assertAppError(t, svc.UpdateProfile(context.Background(), validProfileUpdate()), 404)
}

func TestUpdateAccount_NormalizesEmail(t *testing.T) {
	var got string
	svc := NewUserService(&mockUserRepo{
		updateAccountFunc: func(ctx context.Context, req UpdateAccountRequest) error {
			got = req.Email
			return nil
		},
	})

	err := svc.UpdateAccount(context.Background(), UpdateAccountRequest{
		UserID: uuid.New(),
		Email:  "  Angler@Example.COM ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "angler@example.com" {
		t.Errorf("expected normalized email, got %q", got)
	}
}

func TestUpdateAccount_RequiresEmail(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		updateAccountFunc: func(ctx context.Context, req UpdateAccountRequest) error {
			t.Fatal("repository should not be called")
			return nil
		},
	})

	err := svc.UpdateAccount(context.Background(), UpdateAccountRequest{UserID: uuid.New()})
	assertAppError(t, err, 400)
}

func TestUpdateAccount_DuplicateEmail(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		updateAccountFunc: func(ctx context.Context, req UpdateAccountRequest) error {
			return apperror.NewConflict("an account with this email already exists")
		},
	})

	err := svc.UpdateAccount(context.Background(), UpdateAccountRequest{
		UserID: uuid.New(),
		Email:  "taken@example.com",
	})
	assertAppError(t, err, 409)
}

func TestUpdateImage_RequiresURL(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		updateImageFunc: func(ctx context.Context, userID uuid.UUID, imageURL string) error {
			t.Fatal("repository should not be called")
			return nil
		},
	})

	err := svc.UpdateImage(context.Background(), UpdateImageRequest{UserID: uuid.New()})
	assertAppError(t, err, 400)
}

func TestUpdateImage_Success(t *testing.T) {
	var gotURL string
	svc := NewUserService(&mockUserRepo{
		updateImageFunc: func(ctx context.Context, userID uuid.UUID, imageURL string) error {
			gotURL = imageURL
			return nil
		},
	})

	err := svc.UpdateImage(context.Background(), UpdateImageRequest{
		UserID:   uuid.New(),
		ImageURL: "https://cdn.example.com/avatar.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotURL != "https://cdn.example.com/avatar.png" {
		t.Errorf("repository received wrong url: %q", gotURL)
	}
}

func TestDeleteUser_RepoError(t *testing.T) {
	svc := NewUserService(&mockUserRepo{
		deleteFunc: func(ctx context.Context, userID uuid.UUID) error {
			return errors.New("connection reset")
		},
	})

	assertAppError(t, svc.DeleteUser(context.Background(), uuid.New()), 500)
}
