package domain

import (
	"strings"
	"time"
)

// Role tags an account with the credential store it lives in.
type Role string

const (
	RoleTourist         Role = "tourist"
	RoleTourGuide       Role = "tour-guide"
	RoleAdvertiser      Role = "advertiser"
	RoleSeller          Role = "seller"
	RoleAdmin           Role = "admin"
	RoleTourismGovernor Role = "tourism-governor"
)

// RolePriority is the order in which credential stores are probed when an
// identifier arrives without a declared role. The first store holding the
// identifier wins.
var RolePriority = []Role{
	RoleTourist,
	RoleTourGuide,
	RoleAdvertiser,
	RoleSeller,
	RoleAdmin,
	RoleTourismGovernor,
}

// IdentifierKind names the field a credential store is keyed on.
type IdentifierKind string

const (
	IdentifierEmail    IdentifierKind = "email"
	IdentifierUsername IdentifierKind = "username"
)

// ParseRole accepts the literal role names used in URLs and tokens.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is one of the six known roles.
func (r Role) Valid() bool {
	for _, known := range RolePriority {
		if r == known {
			return true
		}
	}
	return false
}

// Identifier returns the login field the role's store is keyed on.
func (r Role) Identifier() IdentifierKind {
	switch r {
	case RoleAdmin, RoleTourismGovernor:
		return IdentifierUsername
	default:
		return IdentifierEmail
	}
}

// SelfService reports whether accounts of this role may register themselves.
// Staff roles are created by an admin.
func (r Role) SelfService() bool {
	return r.Valid() && r.Identifier() == IdentifierEmail
}

// Profile holds the role-specific fields collected at signup. Only the
// fields relevant to the account's role are populated.
type Profile struct {
	Name              string     `json:"name,omitempty" bson:"name,omitempty"`
	MobileNumber      string     `json:"mobile_number,omitempty" bson:"mobile_number,omitempty"`
	Nationality       string     `json:"nationality,omitempty" bson:"nationality,omitempty"`
	DateOfBirth       *time.Time `json:"dob,omitempty" bson:"dob,omitempty"`
	Job               string     `json:"job,omitempty" bson:"job,omitempty"`
	YearsOfExperience int        `json:"years_of_experience,omitempty" bson:"years_of_experience,omitempty"`
	PreviousWork      string     `json:"previous_work,omitempty" bson:"previous_work,omitempty"`
	Website           string     `json:"website,omitempty" bson:"website,omitempty"`
	Hotline           string     `json:"hotline,omitempty" bson:"hotline,omitempty"`
	CompanyProfile    string     `json:"company_profile,omitempty" bson:"company_profile,omitempty"`
	Description       string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Account is a login record held by one of the six credential stores.
type Account struct {
	ID           string    `json:"id"`
	Role         Role      `json:"role"`
	Email        string    `json:"email,omitempty"`
	Username     string    `json:"username,omitempty"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginIdentifier returns the value the account's store is keyed on.
func (a *Account) LoginIdentifier() string {
	if a.Role.Identifier() == IdentifierUsername {
		return a.Username
	}
	return a.Email
}
