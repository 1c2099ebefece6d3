package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/argon2"
)

// HashPass returns an argon2id hash in "salt.hash" base64 form.
func HashPass(password string) (string, error) {
	salt := make([]byte, 16)
	_, err := rand.Read(salt)

	if err != nil {
		log.Println(err)
		return "", errors.New("unable to create salt")
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	saltBase64 := base64.StdEncoding.EncodeToString(salt)
	hashBase64 := base64.StdEncoding.EncodeToString(hash)

	return fmt.Sprintf("%s.%s", saltBase64, hashBase64), nil
}
