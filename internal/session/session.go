package session

// Role is the closed set of roles the backend hands out. The backend sends a
// free-form string; ParseRole maps it once per login so no render site ever
// compares strings again.
type Role int

// Known roles
const (
	RoleNone    Role = iota // No role stored / not logged in
	RoleStudent             // Regular member
	RoleAdmin               // May mutate market products and moderate
)

// ParseRole maps the backend's role string to a Role.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "", DefaultRole:
		return RoleNone
	default:
		return RoleStudent // Any other non-empty role is a regular member
	}
}

// String returns the role's display tag.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleStudent:
		return "student"
	default:
		return DefaultRole
	}
}

// Session is the logged-in user as the rest of the app sees it. It is built
// once (from the store at startup, or from a fresh code verification) and
// passed explicitly to every view-model; there is no global.
type Session struct {
	UserID int    // Backend user id, -1 when anonymous
	Name   string // Display name
	Class  string // School class, may be empty
	Role   Role   // Resolved role
}

// FromStore builds a Session from whatever the preference store holds.
func FromStore(s *Store) Session {
	return Session{
		UserID: s.UserID(),
		Name:   s.UserName(),
		Class:  s.UserClass(),
		Role:   ParseRole(s.UserRole()),
	}
}

// LoggedIn reports whether a real user is behind this session.
func (s Session) LoggedIn() bool {
	return s.UserID != DefaultUserID
}

// CanEditProduct reports whether the edit affordance is shown on product
// tiles. Display-only: the backend authorizes mutations independently.
func (s Session) CanEditProduct() bool {
	return s.Role == RoleAdmin
}

// CanDeleteProduct reports whether the delete affordance is shown.
func (s Session) CanDeleteProduct() bool {
	return s.Role == RoleAdmin
}

// CanModerateComplaints reports whether the complaint reply field is shown.
func (s Session) CanModerateComplaints() bool {
	return s.Role == RoleAdmin
}
