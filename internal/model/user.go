package model

// User is the signed-in account. A session holds at most one.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"isAdmin"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Role returns the persisted role string for the user.
func (u User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// LoginRequest represents the request payload for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents the request payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by the login and register endpoints.
type AuthResult struct {
	Success bool  `json:"success"`
	User    *User `json:"user,omitempty"`
}

// AuthStatus describes the authentication state of a session.
type AuthStatus struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user,omitempty"`
	Role            string `json:"role,omitempty"`
	DialogOpen      bool   `json:"dialogOpen"`
	RedirectPath    string `json:"redirectPath,omitempty"`
}
