package core

import (
	"errors"
	"testing"
)

func authMembers() []Member {
	return []Member{
		{ID: "m1", Name: "Mario", Status: StatusActive, Username: "mario", Password: "secret", Role: RoleMember},
		{ID: "m2", Name: "Anna", Status: StatusActive, Username: "anna", Password: "hunter2", Role: RoleAdmin},
		{ID: "m3", Name: "Gone", Status: StatusInactive, Username: "gone", Password: "pw", Role: RoleMember},
	}
}

func TestAuthenticate(t *testing.T) {
	id, err := Authenticate("anna", "hunter2", authMembers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.MemberID != "m2" || !id.IsAdmin() {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	cases := []struct{ user, pass string }{
		{"nobody", "secret"},   // unknown user
		{"mario", "wrong"},     // wrong password
		{"Mario", "secret"},    // username is case-sensitive
		{"gone", "pw"},         // inactive account, correct credentials
	}
	for i, tc := range cases {
		_, err := Authenticate(tc.user, tc.pass, authMembers())
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("case %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
}
