package pctoolbox

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
)

// ReadCSVFile loads a CSV file into a list of header-keyed rows.
// The first record supplies the keys; every following record must have
// the same number of fields.
func ReadCSVFile(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	rows, err := decodeCSV(csv.NewReader(f))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return rows, nil
}

// ReadCSVFileText is the lenient text-mode variant of ReadCSVFile: it
// strips a UTF-8 byte order mark, tolerates bare quotes, and accepts
// records with a varying number of fields (short records leave the
// trailing columns empty).
func ReadCSVFileText(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(stripBOM(f))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := decodeCSV(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return rows, nil
}

func decodeCSV(r *csv.Reader) ([]map[string]string, error) {
	header, err := r.Read()
	if err == io.EOF {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := []map[string]string{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				row[key] = record[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
}

// stripBOM removes a leading UTF-8 byte order mark, if present.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom, err := br.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	return br
}
