package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idLength   = 6
)

// GenerateID gera um identificador curto para entidades criadas pela API
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
