package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/session"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

// This is an insecure stub. Apart from the configured admin pair, any
// non-empty credentials produce a fresh customer identity; nothing is
// stored or checked against an account directory.

var (
	ErrLoginInvalid     = errors.New("username and password are required")
	ErrSignupInvalid    = errors.New("name, email and password are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

const (
	AdminID    = "admin-1"
	AdminName  = "ميدو الأدمن"
	AdminEmail = "admin@mido.com"
)

type ServiceConfig struct {
	AdminUsername string
	AdminPassword string
}

type Service struct {
	adminUsername string
	adminHash     string
	sess          *session.State
}

func NewService(cfg ServiceConfig, sess *session.State) (*Service, error) {
	hash, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &Service{adminUsername: cfg.AdminUsername, adminHash: hash, sess: sess}, nil
}

// Identify maps login credentials to a user without touching the session.
func (s *Service) Identify(identifier, password string) (user.User, error) {
	if identifier == s.adminUsername && CheckPassword(s.adminHash, password) {
		return user.User{
			ID:         AdminID,
			Name:       AdminName,
			Email:      AdminEmail,
			Role:       user.RoleAdmin,
			Status:     user.StatusActive,
			JoinedDate: util.Now(),
		}, nil
	}
	if identifier == "" || password == "" {
		return user.User{}, ErrLoginInvalid
	}
	name, _, _ := strings.Cut(identifier, "@")
	return newCustomer(name, identifier), nil
}

func (s *Service) Login(ctx context.Context, identifier, password string) (user.User, error) {
	u, err := s.Identify(identifier, password)
	if err != nil {
		return user.User{}, err
	}
	if err := s.sess.Login(ctx, u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

type SignupInput struct {
	Name            string `json:"name"`
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (user.User, error) {
	if in.Name == "" || in.EmailOrUsername == "" || in.Password == "" {
		return user.User{}, ErrSignupInvalid
	}
	if in.Password != in.ConfirmPassword {
		return user.User{}, ErrPasswordMismatch
	}
	u := newCustomer(in.Name, in.EmailOrUsername)
	if err := s.sess.Login(ctx, u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sess.Logout(ctx)
}

func newCustomer(name, email string) user.User {
	return user.User{
		ID:         util.NewUserID(),
		Name:       name,
		Email:      email,
		Role:       user.RoleCustomer,
		Status:     user.StatusActive,
		JoinedDate: util.Now(),
	}
}
