package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost стоимость хеширования bcrypt по умолчанию
const DefaultCost = bcrypt.DefaultCost

var (
	// ErrInvalidPassword возвращается, когда пароль не совпадает с хешем
	ErrInvalidPassword = errors.New("password: invalid password")

	// ErrEmptyPassword возвращается при попытке захешировать пустой пароль
	ErrEmptyPassword = errors.New("password: password cannot be empty")
)

// Hash возвращает bcrypt-хеш пароля
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password: failed to hash: %w", err)
	}

	return string(bytes), nil
}

// Verify проверяет, что пароль соответствует хешу
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return fmt.Errorf("password: failed to verify: %w", err)
	}

	return nil
}
