// models/user.go
package models

// Roles carried by an Identity.
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// Identity is the authenticated caller, resolved per request and passed explicitly
// to the services that need it.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"-"` // forwarded to the clinic API, never serialized
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Profile is the body of /v1/pasien/profil and /v1/admin/profil.
type Profile struct {
	ID       FlexID `json:"id"`
	Nama     string `json:"nama"`
	Username string `json:"username"`
}

// Identity converts a hydrated profile into an identity for the given role.
func (p Profile) Identity(role, token string) Identity {
	return Identity{
		ID:       p.ID.String(),
		Name:     p.Nama,
		Username: p.Username,
		Role:     role,
		Token:    token,
	}
}

// LoginRequest is accepted by both patient and admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest registers a new patient.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse wraps the bearer token issued by the clinic API.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
