package models

// Role identifies which kind of account an authenticated actor holds.
type Role string

const (
	RoleStudent Role = "student"
	RoleArtisan Role = "artisan"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleArtisan || r == RoleAdmin
}

// Actor is the authenticated identity resolved once at the auth boundary and
// passed into the service layer. Services only ever compare the ID against
// record ownership; they never branch on role strings.
type Actor struct {
	Role Role
	ID   string
}
