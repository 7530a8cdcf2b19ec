//go:build unit || e2e

package builder

import (
	"time"

	"click-collect/internal/domain/user"
	reqdto "click-collect/internal/handler/dto/request"
	"click-collect/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username     string
	Email        string
	Phone        string
	Password     string
	PasswordHash string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "amina",
		Email:        "amina@example.com",
		Phone:        "+242 06 123 4567",
		Password:     "password123",
		PasswordHash: "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.",
		CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, phone, u.PasswordHash, u.CreatedAt), nil
}

func (u *UserBuilder) BuildView() *queries.UserView {
	var phone *string
	if u.Phone != "" {
		p := u.Phone
		phone = &p
	}
	return &queries.UserView{
		ID:        uuid.New(),
		Username:  u.Username,
		Email:     u.Email,
		Phone:     phone,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Phone:    u.Phone,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithoutPhone() *UserBuilder {
	u.Phone = ""
	return u
}
