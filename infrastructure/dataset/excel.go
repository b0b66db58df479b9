package dataset

import (
	"context"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ExcelSource carrega o dataset da primeira planilha de um arquivo .xlsx.
type ExcelSource struct {
	path string
}

// NewExcelSource cria a origem Excel para o caminho informado.
func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

func (s *ExcelSource) Name() string {
	return "excel:" + filepath.Base(s.path)
}

// Load lê a primeira planilha com as mesmas regras da origem CSV: inferência
// de colunas pelo cabeçalho e descarte silencioso de linhas ilegíveis.
func (s *ExcelSource) Load(ctx context.Context) (*domain.SalesDataset, error) {
	file, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo Excel %s", s.path)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("arquivo Excel sem planilhas: %s", s.path)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a planilha %s", sheets[0])
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("planilha vazia: %s", sheets[0])
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
		"sheet":   sheets[0],
		"records": len(records),
		"skipped": skipped,
	}).Info("Dataset Excel carregado")

	return domain.NewSalesDataset(records, s.Name(), time.Now()), nil
}
