package api

import (
	authDomain "github.com/saransh1220/flowart/internal/modules/auth/domain"
	community "github.com/saransh1220/flowart/internal/modules/community/domain"
	directory "github.com/saransh1220/flowart/internal/modules/directory/domain"
)

// Wire types shared with the server.
type (
	Artist        = directory.Artist
	Filter        = directory.Filter
	Facets        = directory.Facets
	Post          = community.Post
	ProfileUpdate = authDomain.ProfileUpdate
)

// User is the signed-in account as returned by the auth endpoints.
type User struct {
	Artist
	Email string `json:"email"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body of a successful register or login.
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type createPostRequest struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}
