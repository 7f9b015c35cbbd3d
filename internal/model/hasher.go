package model

// PasswordHasher hashes plaintext passwords and verifies candidates
// against stored hashes.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash.
	// A mismatch is (false, nil); errors indicate a malformed hash.
	Verify(password, hash string) (bool, error)
}
