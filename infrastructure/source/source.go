// Package source lê os snapshots normalizados de vendas, metas e planos por unidade
package source

import (
	"context"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

//go:generate mockgen -source=source.go -destination=mocks/source.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrSnapshotNotFound = errors.New("snapshot file not found")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
)

// InputSource fornece as entradas de cada unidade já normalizadas pela ingestão externa
type InputSource interface {
	Load(ctx context.Context) ([]domain.DashboardInput, error)
}

type snapshot struct {
	Month string         `json:"month"`
	Units []unitSnapshot `json:"units"`
}

type unitSnapshot struct {
	Unit         string                     `json:"unit"`
	Month        string                     `json:"month"`
	Sales        []saleRecord               `json:"sales"`
	Targets      []targetRecord             `json:"targets"`
	Compensation *domain.CompensationConfig `json:"compensation"`
}

type saleRecord struct {
	Responsible string  `json:"responsible"`
	Product     string  `json:"product"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

type targetRecord struct {
	Responsible string  `json:"responsible"`
	Amount      float64 `json:"amount"`
	Period      string  `json:"period"`
}

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]domain.DashboardInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "leitura do snapshot cancelada")
	}

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSnapshotNotFound, "caminho %s", s.path)
		}
		return nil, errors.Wrapf(err, "erro ao abrir snapshot %s", s.path)
	}
	defer file.Close()

	return Decode(file)
}

// Decode converte o documento JSON em entradas de dashboard. O mês da unidade tem
// precedência sobre o mês do documento; unidades sem plano ficam com o plano vazio.
func Decode(reader io.Reader) ([]domain.DashboardInput, error) {
	var document snapshot
	if err := json.NewDecoder(reader).Decode(&document); err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}

	inputs := make([]domain.DashboardInput, 0, len(document.Units))
	for i, unit := range document.Units {
		input, err := unit.toInput(document.Month)
		if err != nil {
			return nil, errors.Wrapf(err, "unidade %d (%s)", i, unit.Unit)
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}

func (u unitSnapshot) toInput(defaultMonth string) (domain.DashboardInput, error) {
	input := domain.DashboardInput{
		Unit:    strings.TrimSpace(u.Unit),
		Sales:   make([]domain.Sale, 0, len(u.Sales)),
		Targets: make([]domain.Target, 0, len(u.Targets)),
	}

	if input.Unit == "" {
		return input, errors.Wrap(ErrInvalidSnapshot, "unidade sem nome")
	}

	month := u.Month
	if month == "" {
		month = defaultMonth
	}
	if month != "" {
		parsed, err := domain.ParseYearMonth(month)
		if err != nil {
			return input, errors.Wrap(ErrInvalidSnapshot, err.Error())
		}
		input.Month = parsed
	}

	for _, record := range u.Sales {
		date, err := utils.ParseDate(record.Date)
		if err != nil || date.IsZero() {
			return input, errors.Wrapf(ErrInvalidSnapshot, "data de venda inválida %q", record.Date)
		}

		input.Sales = append(input.Sales, domain.Sale{
			Responsible: record.Responsible,
			Product:     record.Product,
			Amount:      record.Amount,
			Date:        *date,
			Unit:        input.Unit,
		})
	}

	for _, record := range u.Targets {
		target := domain.Target{
			Responsible: record.Responsible,
			Amount:      record.Amount,
		}

		if record.Period != "" {
			period, err := domain.ParseYearMonth(record.Period)
			if err != nil {
				return input, errors.Wrap(ErrInvalidSnapshot, err.Error())
			}
			target.Period = period
		}

		input.Targets = append(input.Targets, target)
	}

	if u.Compensation != nil {
		input.Compensation = *u.Compensation
	}

	return input, nil
}
