package usecase

import (
	"strings"

	"print3d_quote/internal/domain/entities"
)

// IAuthorizationService derives caller identity and enforces quote ownership.
//
// Admin bypass is all-or-nothing: once an AuthContext has IsAdmin set, no
// ownership comparison happens anywhere downstream.
type IAuthorizationService interface {
	NormalizeEmail(raw string) string
	IsValidEmail(s string) bool
	IsAdmin(email string) bool
	HasAdminPermission(email, adminFlag string) bool
	ValidateEmail(email string) error
	VerifyOwnership(requesterEmail, resourceOwnerEmail string, isAdmin bool) error
	ExtractAuthContext(src entities.AuthSource) entities.AuthContext
}

type AuthorizationService struct {
	admins map[string]struct{}
}

var _ IAuthorizationService = (*AuthorizationService)(nil)

// NewAuthorizationService builds the service around an admin allow-list. The
// list is normalized once and never changes afterwards.
func NewAuthorizationService(adminEmails []string) *AuthorizationService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if n := entities.NormalizeEmail(e); n != "" {
			admins[n] = struct{}{}
		}
	}
	return &AuthorizationService{admins: admins}
}

func (s *AuthorizationService) NormalizeEmail(raw string) string {
	return entities.NormalizeEmail(raw)
}

func (s *AuthorizationService) IsValidEmail(v string) bool {
	return entities.IsValidEmail(v)
}

func (s *AuthorizationService) IsAdmin(email string) bool {
	n := entities.NormalizeEmail(email)
	if n == "" {
		return false
	}
	_, ok := s.admins[n]
	return ok
}

// HasAdminPermission requires both an asserted admin flag and an allow-listed
// email. The flag alone grants nothing.
func (s *AuthorizationService) HasAdminPermission(email, adminFlag string) bool {
	return isTruthyFlag(adminFlag) && s.IsAdmin(email)
}

func (s *AuthorizationService) ValidateEmail(email string) error {
	n := entities.NormalizeEmail(email)
	if n == "" {
		return entities.NewError(entities.KindMissingEmail, "email is required")
	}
	if !entities.IsValidEmail(n) {
		return entities.NewError(entities.KindInvalidEmail, "email is malformed")
	}
	return nil
}

func (s *AuthorizationService) VerifyOwnership(requesterEmail, resourceOwnerEmail string, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	requester := entities.NormalizeEmail(requesterEmail)
	owner := entities.NormalizeEmail(resourceOwnerEmail)
	if requester == "" || owner == "" || requester != owner {
		return entities.NewError(entities.KindForbidden, "requester does not own this quote")
	}
	return nil
}

func (s *AuthorizationService) ExtractAuthContext(src entities.AuthSource) entities.AuthContext {
	email := src.BodyEmail
	if strings.TrimSpace(email) == "" {
		email = src.QueryEmail
	}
	flag := src.BodyAdmin
	if strings.TrimSpace(flag) == "" {
		flag = src.QueryAdmin
	}
	email = entities.NormalizeEmail(email)
	return entities.AuthContext{
		Email:   email,
		IsAdmin: s.HasAdminPermission(email, flag),
	}
}

func isTruthyFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
