package importer

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	data := []byte("name,price,stock\nWidget,19.99,5\nGadget,9.50\n")
	rows, err := Read(data, "products.csv")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "Widget" || rows[0]["price"] != "19.99" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	// short row: missing cell must be present with an empty value
	if v, ok := rows[1]["stock"]; !ok || v != "" {
		t.Errorf("expected empty stock cell, got %q (present=%v)", v, ok)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	_, err := Read([]byte("name,price\n"), "empty.csv")
	if !errors.Is(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := Read([]byte(""), "empty.csv")
	if !errors.Is(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestReadCSVMalformed(t *testing.T) {
	_, err := Read([]byte("name,price\n\"unterminated,1\n"), "bad.csv")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetSheetRow(sheet, "A1", &[]any{"name", "price"})
	f.SetSheetRow(sheet, "A2", &[]any{"Widget", 19.99})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	rows, err := Read(buf.Bytes(), "products.xlsx")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["name"] != "Widget" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}

func TestReadWorkbookHeaderOnly(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetRow(f.GetSheetName(0), "A1", &[]any{"name", "price"})
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	_, err = Read(buf.Bytes(), "empty.xlsx")
	if !errors.Is(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestReadWorkbookGarbage(t *testing.T) {
	_, err := Read([]byte("this is not a workbook"), "broken.xlsx")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
