package dashboard

import "time"

//go:generate mockgen -source=clock.go -destination=mocks/clock.go -package=mocks

// Clock fornece o instante "agora" usado pelas projeções
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	location *time.Location
}

// NewSystemClock cria um relógio no fuso informado; fuso nil usa time.Local
func NewSystemClock(location *time.Location) *SystemClock {
	if location == nil {
		location = time.Local
	}

	return &SystemClock{location: location}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}
