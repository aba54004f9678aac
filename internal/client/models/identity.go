// Package models defines client-side data models used by the VIP Club CLI.
package models

// Identity is the authenticated user's profile as resolved by the backend.
// It is immutable from the client's perspective: each successful resolution
// replaces it wholesale, never patches it.
type Identity struct {
	// UserID is the backend-assigned unique identifier.
	UserID string `json:"user_id"`

	// Email is the account email the external login flow verified.
	Email string `json:"email"`

	// Name is the display name.
	Name string `json:"name"`

	// Picture is an optional avatar URL.
	Picture string `json:"picture,omitempty"`

	// CreatedAt is the account creation timestamp as reported by the
	// backend. Kept as the wire string; the client never interprets it.
	CreatedAt string `json:"created_at"`
}
