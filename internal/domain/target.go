package domain

import "strings"

// Target é a meta mensal de um consultor. Period vazio vale para qualquer mês.
type Target struct {
	Responsible string    `json:"responsible"`
	Amount      float64   `json:"amount"`
	Period      YearMonth `json:"period"`
}

// AppliesTo indica se a meta vale para o mês informado
func (t Target) AppliesTo(month YearMonth) bool {
	return t.Period == "" || t.Period == month
}

// TargetBook indexa as metas por consultor e mês
type TargetBook struct {
	byMonth  map[string]map[YearMonth]float64
	anyMonth map[string]float64
}

// NewTargetBook monta o índice de metas. Em caso de duplicidade prevalece a primeira meta.
func NewTargetBook(targets []Target) *TargetBook {
	book := &TargetBook{
		byMonth:  make(map[string]map[YearMonth]float64),
		anyMonth: make(map[string]float64),
	}

	for _, target := range targets {
		key := NormalizeName(target.Responsible)
		if key == "" {
			continue
		}

		amount := SanitizeAmount(target.Amount)

		if target.Period == "" {
			if _, exists := book.anyMonth[key]; !exists {
				book.anyMonth[key] = amount
			}
			continue
		}

		months, exists := book.byMonth[key]
		if !exists {
			months = make(map[YearMonth]float64)
			book.byMonth[key] = months
		}

		if _, exists := months[target.Period]; !exists {
			months[target.Period] = amount
		}
	}

	return book
}

// Lookup retorna a meta do consultor no mês. A meta específica do mês tem precedência.
func (b *TargetBook) Lookup(name string, month YearMonth) (float64, bool) {
	key := NormalizeName(name)

	if months, exists := b.byMonth[key]; exists {
		if amount, found := months[month]; found {
			return amount, true
		}
	}

	amount, found := b.anyMonth[key]
	return amount, found
}

// Roster é a lista oficial de consultores de um mês, na ordem das metas
type Roster struct {
	names []string
	index map[string]int
}

// NewRoster monta o roster oficial a partir das metas válidas para o mês
func NewRoster(targets []Target, month YearMonth) *Roster {
	roster := &Roster{
		names: make([]string, 0, len(targets)),
		index: make(map[string]int, len(targets)),
	}

	for _, target := range targets {
		if !target.AppliesTo(month) {
			continue
		}

		name := strings.TrimSpace(target.Responsible)
		key := NormalizeName(name)
		if key == "" {
			continue
		}

		if _, exists := roster.index[key]; exists {
			continue
		}

		roster.index[key] = len(roster.names)
		roster.names = append(roster.names, name)
	}

	return roster
}

// Names retorna os nomes oficiais (trim aplicado) na ordem de cadastro
func (r *Roster) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Resolve retorna o nome oficial correspondente a um nome qualquer
func (r *Roster) Resolve(name string) (string, bool) {
	position, exists := r.index[NormalizeName(name)]
	if !exists {
		return "", false
	}

	return r.names[position], true
}

// Has indica se o nome pertence ao roster
func (r *Roster) Has(name string) bool {
	_, exists := r.index[NormalizeName(name)]
	return exists
}

// Len retorna o tamanho do roster
func (r *Roster) Len() int {
	return len(r.names)
}
