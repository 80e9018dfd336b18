package model

// Credential is a stored login for a member of hospital staff.
//
// Password holds either an argon2id-encoded hash ("$argon2id$...") or a
// legacy plaintext password carried over from the original credential file.
type Credential struct {
	Username string
	Password string
	Role     Role
}
