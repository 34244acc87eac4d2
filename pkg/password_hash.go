package pkg

import "golang.org/x/crypto/bcrypt"

const DefaultPasswordCost = 14

func HashPassword(password string) (string, error) {
	return HashPasswordCost(password, DefaultPasswordCost)
}

func HashPasswordCost(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
