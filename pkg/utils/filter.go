package utils

import "sort"

// Predicate é um critério de seleção de registros
type Predicate[T any] func(T) bool

// Filter retorna os itens que atendem a todos os predicados, preservando a ordem original.
// Sem predicados, retorna uma cópia da lista.
func Filter[T any](items []T, predicates ...Predicate[T]) []T {
	filtered := make([]T, 0, len(items))

	for _, item := range items {
		if matchesAll(item, predicates) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// Count retorna quantos itens atendem a todos os predicados
func Count[T any](items []T, predicates ...Predicate[T]) int {
	count := 0
	for _, item := range items {
		if matchesAll(item, predicates) {
			count++
		}
	}

	return count
}

// Not inverte um predicado
func Not[T any](predicate Predicate[T]) Predicate[T] {
	return func(item T) bool {
		return !predicate(item)
	}
}

func matchesAll[T any](item T, predicates []Predicate[T]) bool {
	for _, predicate := range predicates {
		if predicate != nil && !predicate(item) {
			return false
		}
	}

	return true
}

// SortBy ordena de forma estável uma cópia da lista usando a função less
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// GroupBy agrupa os itens por chave mantendo a ordem de primeira ocorrência das chaves
func GroupBy[T any, K comparable](items []T, key func(T) K) ([]K, map[K][]T) {
	keys := make([]K, 0)
	groups := make(map[K][]T)

	for _, item := range items {
		k := key(item)
		if _, exists := groups[k]; !exists {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}

	return keys, groups
}
