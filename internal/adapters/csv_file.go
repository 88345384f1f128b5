package adapters

import (
	"encoding/csv"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xmp-reconcile/internal/ports"
)

// filenameColumn is the identifier column of import and export files.
const filenameColumn = "filename"

// CSVFileAdapter implements the tabular port over csv files. Import rows
// are keyed by the filename column; missing cells are filled with empty
// strings, which downstream merge treats as "no value provided".
type CSVFileAdapter struct{}

func NewCSVFileAdapter() CSVFileAdapter {
	return CSVFileAdapter{}
}

func (a CSVFileAdapter) ReadRows(path string) (map[string]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open csv file: " + path).
			WithCause(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse csv file: " + path).
			WithCause(err)
	}
	if len(records) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("csv file has no header row: " + path)
	}

	header := records[0]
	filenameIndex := -1
	for i, column := range header {
		if column == filenameColumn {
			filenameIndex = i
			break
		}
	}
	if filenameIndex < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("csv file has no filename column: " + path)
	}

	rows := make(map[string]map[string]string, len(records)-1)
	for _, record := range records[1:] {
		if len(record) <= filenameIndex || record[filenameIndex] == "" {
			continue
		}
		row := make(map[string]string, len(header)-1)
		for i, column := range header {
			if i == filenameIndex {
				continue
			}
			value := ""
			if i < len(record) {
				value = record[i]
			}
			row[column] = value
		}
		rows[record[filenameIndex]] = row
	}
	return rows, nil
}

func (a CSVFileAdapter) WriteRows(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create csv file: " + path).
			WithCause(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return writeCSVError(path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return writeCSVError(path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return writeCSVError(path, err)
	}
	return nil
}

func writeCSVError(path string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write csv file: " + path).
		WithCause(err)
}

var _ ports.TabularPort = CSVFileAdapter{}
