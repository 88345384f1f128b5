package ports

// TabularPort reads and writes the delimited import/export files. Rows are
// keyed by item filename; cell keys are "prefix:property" column names. An
// empty cell means "no value provided" and is preserved as an empty string.
type TabularPort interface {
	// ReadRows loads an import file into filename-keyed row maps.
	ReadRows(path string) (map[string]map[string]string, error)

	// WriteRows writes an export file with the given header and rows.
	WriteRows(path string, header []string, rows [][]string) error
}
