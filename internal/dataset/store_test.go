package dataset

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"dashforge/internal/engine"
)

func TestStorePutRows(t *testing.T) {
	store := NewStore()
	rows := []engine.Row{{"region": "US", "sales": 100.0}}

	store.Put("sales", rows)

	got, ok := store.Rows("sales")
	if !ok || len(got) != 1 {
		t.Fatalf("Rows() = %v, %v", got, ok)
	}
	if engine.ToString(got[0]["region"]) != "US" {
		t.Errorf("unexpected row: %v", got[0])
	}

	if _, ok := store.Rows("missing"); ok {
		t.Error("unknown dataset should not be found")
	}
}

func TestStoreIDs(t *testing.T) {
	store := NewStore()
	store.Put("b", nil)
	store.Put("a", nil)

	if got := store.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("IDs() = %v, want sorted ids", got)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	content := `[{"region": "US", "amount": 100}, {"region": "EU", "amount": 250.5}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	id, rows, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if id != "orders" || len(rows) != 2 {
		t.Fatalf("id=%q rows=%d", id, len(rows))
	}
	if engine.ToNumber(rows[1]["amount"]) != 250.5 {
		t.Errorf("unexpected row: %v", rows[1])
	}
}

func TestLoadFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	content := "region,amount\nUS,100\nEU,250\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	id, rows, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if id != "sales" || len(rows) != 2 {
		t.Fatalf("id=%q rows=%d", id, len(rows))
	}
	// CSV cells stay strings; numeric coercion is the engine's job.
	if rows[0]["amount"] != "100" {
		t.Errorf("amount = %v (%T), want string \"100\"", rows[0]["amount"], rows[0]["amount"])
	}
	if engine.ToNumber(rows[0]["amount"]) != 100 {
		t.Errorf("coerced amount = %v, want 100", engine.ToNumber(rows[0]["amount"]))
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xml")
	if err := os.WriteFile(path, []byte("<rows/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadFile(path); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"orders.json": `[{"id": 1}]`,
		"sales.csv":   "region,amount\nUS,100\n",
		"notes.txt":   "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	store := NewStore()
	if err := LoadDir(context.Background(), store, dir); err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}

	if got := store.IDs(); !reflect.DeepEqual(got, []string{"orders", "sales"}) {
		t.Errorf("IDs() = %v, want [orders sales]", got)
	}
}
