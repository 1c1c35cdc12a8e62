package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrParse = errors.New("cannot parse uploaded file")
var ErrEmptyData = errors.New("uploaded file contains no rows")

// RawRow maps a column header, as spelled in the source file, to the raw
// cell value. Cells missing from a short row are present with an empty value.
type RawRow map[string]string

// Read decodes the uploaded buffer into rows. The extension decides the
// format: .csv is parsed as UTF-8 delimited text, anything else as an xlsx
// workbook (first sheet only).
func Read(data []byte, filename string) ([]RawRow, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return readCSV(data)
	}
	return readWorkbook(data)
}

func readCSV(data []byte) (rows []RawRow, err error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	headers, e := reader.Read()
	if e != nil {
		if e == io.EOF {
			err = ErrEmptyData
			return
		}
		log.Printf("readCSV: %v", e)
		err = ErrParse
		return
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	for {
		record, e := reader.Read()
		if e == io.EOF {
			break
		}
		if e != nil {
			log.Printf("readCSV: %v", e)
			err = ErrParse
			return
		}
		rows = append(rows, rowFromRecord(headers, record))
	}
	if len(rows) == 0 {
		err = ErrEmptyData
	}
	return
}

func readWorkbook(data []byte) (rows []RawRow, err error) {
	f, e := excelize.OpenReader(bytes.NewReader(data))
	if e != nil {
		log.Printf("readWorkbook: %v", e)
		err = ErrParse
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		err = ErrEmptyData
		return
	}
	all, e := f.GetRows(sheet)
	if e != nil {
		log.Printf("readWorkbook: %v", e)
		err = ErrParse
		return
	}
	if len(all) < 2 {
		err = ErrEmptyData
		return
	}

	headers := all[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	for _, record := range all[1:] {
		rows = append(rows, rowFromRecord(headers, record))
	}
	return
}

func rowFromRecord(headers []string, record []string) RawRow {
	row := make(RawRow, len(headers))
	for i, header := range headers {
		if header == "" {
			continue
		}
		if i < len(record) {
			row[header] = strings.TrimSpace(record[i])
		} else {
			row[header] = ""
		}
	}
	return row
}
