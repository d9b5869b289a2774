package account

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Hashes starting with this prefix never match any password.
const unusablePasswordPrefix = "!"

// PasswordCost is the bcrypt cost used for new hashes.
var PasswordCost = bcrypt.DefaultCost

// HashPassword hashes raw, or returns an unusable marker when raw is nil.
func HashPassword(raw *string) (string, error) {
	if raw == nil {
		return unusablePasswordPrefix + uuid.NewString(), nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*raw), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func HasUsablePassword(hash string) bool {
	return hash != "" && !strings.HasPrefix(hash, unusablePasswordPrefix)
}

func CheckPassword(hash, raw string) bool {
	if !HasUsablePassword(hash) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
