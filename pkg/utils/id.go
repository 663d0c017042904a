package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// alfabeto sem caracteres ambíguos em URLs
const idAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZabcdefghjkmnpqrstvwxyz"

const idLength = 12

// GenerateID gera o identificador curto de um registro de análise
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
