package quiz

import "golang.org/x/crypto/bcrypt"

// PasswordHasher turns a submitted password into its stored form and checks
// a submitted password against a stored one.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}

// PlainPasswords stores and compares passwords verbatim.
type PlainPasswords struct{}

func (PlainPasswords) Hash(password string) (string, error) {
	return password, nil
}

func (PlainPasswords) Matches(stored, password string) bool {
	return stored == password
}

// BcryptPasswords stores bcrypt hashes. Cost 0 means bcrypt.DefaultCost.
type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptPasswords) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
