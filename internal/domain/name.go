package domain

import "strings"

// NormalizeName gera a chave de comparação de nomes de consultores.
// Todas as buscas por roster e metas devem passar por aqui.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
