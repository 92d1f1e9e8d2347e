package domain

const RoleAdmin = "admin"

// Identity is what the external identity provider supplies: a stable
// opaque user id plus display fields.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
