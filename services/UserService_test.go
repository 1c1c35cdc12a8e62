package services

import (
	"errors"
	"testing"

	"storefront/models"
)

func TestCheckAccess(t *testing.T) {
	sr := newFakeSessionRepo()
	sr.put("admin-session", 1, "admin")
	sr.put("user-session", 2, "user")
	us := NewUserService(nil, sr)

	if err := us.CheckAccess("admin-session"); err != nil {
		t.Errorf("admin session rejected: %v", err)
	}
	if err := us.CheckAccess("user-session"); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("user session: err = %v, want ErrForbidden", err)
	}
	if err := us.CheckAccess("missing"); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("missing session: err = %v, want ErrUnauthorized", err)
	}
}

func TestCheckAuth(t *testing.T) {
	sr := newFakeSessionRepo()
	sr.put("s1", 1, "user")
	us := NewUserService(nil, sr)

	ok, err := us.CheckAuth("s1")
	if err != nil || !ok {
		t.Errorf("CheckAuth(s1) = %v, %v, want true", ok, err)
	}
	ok, err = us.CheckAuth("nope")
	if err != nil || ok {
		t.Errorf("CheckAuth(nope) = %v, %v, want false", ok, err)
	}
}
