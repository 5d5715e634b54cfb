package model

import "time"

// DefaultRole is assigned to users created without an explicit role list.
const DefaultRole = "Employee"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the representation returned by the API; it never carries
// the password hash.
type PublicUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   bool     `json:"active"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Roles: u.Roles, Active: u.Active}
}

// Identity is the authenticated principal the access guard attaches to
// the request context.
type Identity struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

func (i Identity) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range i.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
