package encrypt

import "golang.org/x/crypto/bcrypt"

// bcrypt cost 12
const hashCost = 12

func HashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return ""
	}
	return string(hash)
}

func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
