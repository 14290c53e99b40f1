package contract

// IHasher abstracts password hashing and token digesting.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// IUUIDGenerator abstracts ID generation so usecases stay deterministic in tests.
type IUUIDGenerator interface {
	NewUUID() string
}
