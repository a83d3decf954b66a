package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"slices"
	"strings"

	"github.com/c2399750-bit/Mido-Store/internal/domain/user"
	"github.com/c2399750-bit/Mido-Store/internal/util"
)

// MaxAvatarBytes is the largest decoded avatar image accepted.
const MaxAvatarBytes = 2 << 20

var (
	ErrEmptyAddress    = errors.New("address is required")
	ErrAddressNotFound = errors.New("address not found")
	ErrAvatarInvalid   = errors.New("avatar must be a base64 image data URL")
	ErrAvatarTooLarge  = errors.New("avatar is larger than 2MB")
)

type ProfileInput struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"notblank"`
}

func (s *Service) UpdateProfile(ctx context.Context, in ProfileInput) (user.User, error) {
	if err := util.Validate(in); err != nil {
		return user.User{}, err
	}
	return s.sess.UpdateUser(ctx, func(u user.User) (user.User, error) {
		u.Name = strings.TrimSpace(in.Name)
		u.Email = strings.TrimSpace(in.Email)
		return u, nil
	})
}

func (s *Service) AddAddress(ctx context.Context, addr string) (user.User, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return user.User{}, ErrEmptyAddress
	}
	return s.sess.UpdateUser(ctx, func(u user.User) (user.User, error) {
		u.Addresses = append(u.Addresses, addr)
		return u, nil
	})
}

func (s *Service) RemoveAddress(ctx context.Context, index int) (user.User, error) {
	return s.sess.UpdateUser(ctx, func(u user.User) (user.User, error) {
		if index < 0 || index >= len(u.Addresses) {
			return user.User{}, ErrAddressNotFound
		}
		u.Addresses = slices.Delete(u.Addresses, index, index+1)
		return u, nil
	})
}

// SetAvatar stores an image as a data URL, e.g. "data:image/png;base64,...".
func (s *Service) SetAvatar(ctx context.Context, dataURL string) (user.User, error) {
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(meta, "data:image/") || !strings.HasSuffix(meta, ";base64") {
		return user.User{}, ErrAvatarInvalid
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return user.User{}, ErrAvatarInvalid
	}
	if len(raw) > MaxAvatarBytes {
		return user.User{}, ErrAvatarTooLarge
	}
	return s.sess.UpdateUser(ctx, func(u user.User) (user.User, error) {
		u.Avatar = dataURL
		return u, nil
	})
}

func (s *Service) DeleteAvatar(ctx context.Context) (user.User, error) {
	return s.sess.UpdateUser(ctx, func(u user.User) (user.User, error) {
		u.Avatar = ""
		return u, nil
	})
}
