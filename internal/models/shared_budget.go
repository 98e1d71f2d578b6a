package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SharedBudget is a budget owned jointly by multiple users.
//
// Categories and expenses attached to a shared budget are visible to
// all members instead of only their creator.
type SharedBudget struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // Display currency, ISO 4217
}

func (s *SharedBudget) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)

	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}

	if !validCurrency(s.Currency) {
		return ErrCurrencyInvalid
	}

	return nil
}

// MemberRole controls what a member may do with a shared budget.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
	RoleViewer MemberRole = "viewer"
)

// Valid reports whether the role is one of the known values.
func (r MemberRole) Valid() bool {
	return r == RoleOwner || r == RoleMember || r == RoleViewer
}

// CanWrite reports whether the role allows creating and modifying
// resources of the shared budget. Viewers can only read.
func (r MemberRole) CanWrite() bool {
	return r == RoleOwner || r == RoleMember
}

// SharedBudgetMember is a membership row. Membership is checked on
// every request, there is no caching.
type SharedBudgetMember struct {
	Timestamps
	SharedBudgetID uuid.UUID  `json:"sharedBudgetId" gorm:"primaryKey"` // ID of the shared budget
	UserID         uuid.UUID  `json:"userId" gorm:"primaryKey"`         // ID of the member
	Role           MemberRole `json:"role" example:"member"`            // Role of the member
}

func (m *SharedBudgetMember) BeforeSave(_ *gorm.DB) error {
	if m.Role == "" {
		m.Role = RoleMember
	}

	if !m.Role.Valid() {
		return ErrRoleInvalid
	}

	return nil
}

// memberRole returns the membership row for a user on a shared budget.
// The bool reports whether a membership exists.
func memberRole(db *gorm.DB, userID, sharedBudgetID uuid.UUID) (MemberRole, bool, error) {
	var member SharedBudgetMember
	err := db.
		Where("shared_budget_id = ? AND user_id = ?", sharedBudgetID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return "", false, nil
		}

		return "", false, err
	}

	return member.Role, true, nil
}

// CanView reports whether the user is a member of the shared budget.
func CanView(db *gorm.DB, userID, sharedBudgetID uuid.UUID) (bool, error) {
	_, isMember, err := memberRole(db, userID, sharedBudgetID)
	return isMember, err
}

// IsOwner reports whether the user has the owner role on the shared
// budget. Only owners manage memberships.
func IsOwner(db *gorm.DB, userID, sharedBudgetID uuid.UUID) (bool, error) {
	role, isMember, err := memberRole(db, userID, sharedBudgetID)
	if err != nil || !isMember {
		return false, err
	}

	return role == RoleOwner, nil
}

// CanEdit reports whether the user may create or modify resources of
// the shared budget: true for owners and members, false for viewers
// and non-members.
func CanEdit(db *gorm.DB, userID, sharedBudgetID uuid.UUID) (bool, error) {
	role, isMember, err := memberRole(db, userID, sharedBudgetID)
	if err != nil || !isMember {
		return false, err
	}

	return role.CanWrite(), nil
}
