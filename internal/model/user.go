package model

import "time"

// User represents a registered account. Records are immutable after
// creation; there is no update or delete path for users. The json tags
// are omitted because these structs are used internally by the
// repository layer; handlers define separate response types with
// appropriate JSON tags.
//
// Fields:
//  Email        – unique address, normalized to lower case.
//  Username     – display name chosen at registration.
//  PasswordHash – bcrypt hash of the password; the plaintext is never stored.
//  CreatedAt    – timestamp of registration.
type User struct {
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
