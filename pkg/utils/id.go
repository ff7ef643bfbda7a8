package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const snapshotIDLength = 12

// GenerateID gera um identificador curto para snapshots de indicadores
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, snapshotIDLength)
}
