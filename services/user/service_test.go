package user

import (
	"context"
	"errors"
	"testing"

	"farmmarket/models"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	resp, err := svc.RegisterUser(context.Background(), models.UserRegistration{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "s3cret-pass",
		Role:     "farmer",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Error("no token issued")
	}
	if resp.User.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plaintext")
	}
	if resp.User.Role != "farmer" {
		t.Errorf("role = %q", resp.User.Role)
	}

	auth, err := svc.AuthenticateUser(context.Background(), "amina@example.com", "s3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	if auth.User.ID != resp.User.ID {
		t.Error("authenticated as a different user")
	}

	if _, err := svc.AuthenticateUser(context.Background(), "amina@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.AuthenticateUser(context.Background(), "ghost@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	reg := models.UserRegistration{Name: "A", Email: "a@example.com", Password: "password1"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RegisterUser(context.Background(), reg); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterDefaultsToBuyer(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	resp, err := svc.RegisterUser(context.Background(), models.UserRegistration{
		Name: "B", Email: "b@example.com", Password: "password1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.User.Role != "buyer" {
		t.Errorf("role = %q, want buyer", resp.User.Role)
	}
}
