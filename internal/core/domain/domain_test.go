package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"tourist", RoleTourist, false},
		{" Tour-Guide ", RoleTourGuide, false},
		{"TOURISM-GOVERNOR", RoleTourismGovernor, false},
		{"guide", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidRole) {
				t.Errorf("ParseRole(%q): expected ErrInvalidRole, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseRole(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestRole_IdentifierAndSelfService(t *testing.T) {
	for _, r := range RolePriority {
		staff := r == RoleAdmin || r == RoleTourismGovernor
		if staff && r.Identifier() != IdentifierUsername {
			t.Errorf("%s should be keyed on username", r)
		}
		if !staff && r.Identifier() != IdentifierEmail {
			t.Errorf("%s should be keyed on email", r)
		}
		if r.SelfService() == staff {
			t.Errorf("%s: unexpected self-service flag", r)
		}
	}
	if Role("pirate").SelfService() {
		t.Errorf("unknown roles are never self-service")
	}
}

func TestAccount_LoginIdentifier(t *testing.T) {
	tourist := &Account{Role: RoleTourist, Email: "a@x.com", Username: "alice"}
	admin := &Account{Role: RoleAdmin, Email: "ignored@x.com", Username: "root"}

	if got := tourist.LoginIdentifier(); got != "a@x.com" {
		t.Errorf("tourist identifier = %q", got)
	}
	if got := admin.LoginIdentifier(); got != "root" {
		t.Errorf("admin identifier = %q", got)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := map[string]bool{
		"Passw0rd":                true,
		"short1A":                 false,
		"alllowercase1":           false,
		"ALLUPPERCASE1":           false,
		"NoDigitsHere":            false,
		strings.Repeat("Aa1", 25): false,
	}

	for pw, ok := range cases {
		err := ValidatePassword(pw)
		if ok && err != nil {
			t.Errorf("%q: unexpected error %v", pw, err)
		}
		if !ok {
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != "password" {
				t.Errorf("%q: expected password ValidationError, got %v", pw, err)
			}
		}
	}
}

func TestWrappedConflictErrors(t *testing.T) {
	if !errors.Is(ErrEmailTaken, ErrAccountExists) || !errors.Is(ErrUsernameTaken, ErrAccountExists) {
		t.Fatalf("namespace conflicts must be account-exists errors")
	}
}
