package core

// Identity is the outcome of a successful login: the resolved member and the
// role that gates admin-only pages.
type Identity struct {
	MemberID string
	Name     string
	Role     Role
}

// Authenticate matches credentials against the member table: username and
// password must match exactly (case-sensitive, plaintext comparison) and the
// member must be Active. Every failure mode collapses into the same
// ErrInvalidCredentials so callers cannot distinguish an unknown user from a
// wrong password or an inactive account.
func Authenticate(username, password string, members []Member) (Identity, error) {
	for _, m := range members {
		if m.Username != username || m.Password != password || !m.Active() {
			continue
		}
		return Identity{MemberID: NormalizeID(m.ID), Name: m.Name, Role: m.Role}, nil
	}
	return Identity{}, ErrInvalidCredentials
}

// IsAdmin reports whether the identity may use admin-only pages.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}
