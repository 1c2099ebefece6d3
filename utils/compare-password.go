package utils

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ComparePass checks a plain password against a "salt.hash" value produced
// by HashPass.
func ComparePass(password, hashPassword string) error {
	parts := strings.Split(hashPassword, ".")
	if len(parts) != 2 {
		return errors.New("invalid hash format")
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return errors.New("invalid hash format")
	}
	stored, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return errors.New("invalid hash format")
	}

	computed := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	if len(stored) != len(computed) {
		return errors.New("incorrect password")
	}
	if subtle.ConstantTimeCompare(stored, computed) != 1 {
		return errors.New("incorrect password")
	}
	return nil
}
