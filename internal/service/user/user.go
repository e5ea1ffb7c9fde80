package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/bystrodel/backend/internal/repo"
)

const defaultPhoneRegion = "RU"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// UpdateProfileRequest carries the personal-cabinet profile fields.
// Nil means "leave unchanged"; an empty string clears the field.
type UpdateProfileRequest struct {
	Name    *string
	Phone   *string
	Address *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Profile(ctx context.Context, userID uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	upd := s.db.User.UpdateOneID(userID)

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			upd = upd.ClearName()
		} else {
			upd = upd.SetName(name)
		}
	}

	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			upd = upd.ClearPhone()
		} else {
			num, err := phonenumbers.Parse(phone, defaultPhoneRegion)
			if err != nil || !phonenumbers.IsValidNumber(num) {
				return nil, ErrInvalidPhone
			}
			upd = upd.SetPhone(phonenumbers.Format(num, phonenumbers.E164))
		}
	}

	if req.Address != nil {
		address := strings.TrimSpace(*req.Address)
		if address == "" {
			upd = upd.ClearAddress()
		} else {
			upd = upd.SetAddress(address)
		}
	}

	u, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}
