package dataset

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
)

// CSVSource carrega o dataset de um arquivo CSV com cabeçalho.
type CSVSource struct {
	path string
}

// NewCSVSource cria a origem CSV para o caminho informado.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string {
	return "csv:" + filepath.Base(s.path)
}

// Load lê o arquivo inteiro, infere as colunas pelo cabeçalho e converte as
// linhas. Linhas com data ou valor ilegível são descartadas; a ordem do
// arquivo é preservada.
func (s *CSVSource) Load(ctx context.Context) (*domain.SalesDataset, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo CSV %s", s.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o arquivo CSV %s", s.path)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("arquivo CSV vazio: %s", s.path)
	}

	mapping, err := inferColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		record, ok := parseRecord(row, mapping)
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":    s.path,
		"records": len(records),
		"skipped": skipped,
	}).Info("Dataset CSV carregado")

	return domain.NewSalesDataset(records, s.Name(), time.Now()), nil
}
