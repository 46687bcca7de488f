package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
)

// ExampleSeparator splits the examples cell into individual examples.
const ExampleSeparator = "|"

// Config describes the sheet layout. Columns are zero-based; a negative
// column is absent from the file.
type Config struct {
	SheetName        string
	SkipHeader       bool
	WordColumn       int
	DefinitionColumn int
	ExamplesColumn   int
	DomainColumn     int
	LanguageColumn   int
}

// DefaultConfig reads word, definition, examples, domain, language from
// columns A to E of the first sheet, skipping one header row.
func DefaultConfig() Config {
	return Config{
		SkipHeader:       true,
		WordColumn:       0,
		DefinitionColumn: 1,
		ExamplesColumn:   2,
		DomainColumn:     3,
		LanguageColumn:   4,
	}
}

// ReadFile dispatches on the extension: .csv is read as CSV, .xlsx/.xlsm as
// a workbook.
func ReadFile(path string, cfg Config) ([]domain.ImportRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f, cfg)
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open Excel file: %w", err)
		}
		defer f.Close()
		return readWorkbook(f, cfg)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func ReadCSV(r io.Reader, cfg Config) ([]domain.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		records = append(records, record)
	}
	return toRows(records, cfg), nil
}

// ReadWorkbook reads an .xlsx stream.
func ReadWorkbook(r io.Reader, cfg Config) ([]domain.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	return readWorkbook(f, cfg)
}

func readWorkbook(f *excelize.File, cfg Config) ([]domain.ImportRow, error) {
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of %q: %w", sheet, err)
	}
	return toRows(records, cfg), nil
}

func toRows(records [][]string, cfg Config) []domain.ImportRow {
	var rows []domain.ImportRow
	for i, record := range records {
		if i == 0 && cfg.SkipHeader {
			continue
		}
		row := domain.ImportRow{
			Line:       i + 1,
			Word:       cell(record, cfg.WordColumn),
			Definition: cell(record, cfg.DefinitionColumn),
			Domain:     cell(record, cfg.DomainColumn),
			Language:   cell(record, cfg.LanguageColumn),
		}
		if row.Word == "" && row.Definition == "" {
			continue
		}
		if examples := cell(record, cfg.ExamplesColumn); examples != "" {
			row.Examples = domain.CleanExamples(strings.Split(examples, ExampleSeparator))
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[col])
}
