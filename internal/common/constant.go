// Package common contains shared constants and sentinel errors used across
// the VIP Club client components.
package common

const (
	// SessionTokenKey is the metadata-store key holding the opaque bearer
	// token. Absence of the row is the canonical "no session" signal.
	SessionTokenKey = "session_token"

	// SessionUserKey is the metadata-store key recording which user the
	// persisted token belongs to. Written and removed together with
	// SessionTokenKey in one transaction.
	SessionUserKey = "session_user_id"

	// InstallationIDKey is the metadata-store key holding the per-install
	// identifier generated on first run.
	InstallationIDKey = "installation_id"

	// InstallationIDHeaderName is the HTTP header carrying the installation
	// identifier on outbound requests. Diagnostic only, never a credential.
	InstallationIDHeaderName = "X-Installation-ID"
)
