package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hstanley/networth"
)

func TestDataFile_FlagBeatsEnv(t *testing.T) {
	old := *dataFile
	defer func() { *dataFile = old }()

	*dataFile = "/explicit/path.json"
	t.Setenv(EnvDataFile, "/env/path.json")

	if got := DataFile(); got != "/explicit/path.json" {
		t.Errorf("DataFile() = %q, want the flag value", got)
	}

	*dataFile = ""
	if got := DataFile(); got != "/env/path.json" {
		t.Errorf("DataFile() = %q, want the environment value", got)
	}
}

func TestDecodeTracker_MissingFileDegrades(t *testing.T) {
	old := *dataFile
	defer func() { *dataFile = old }()
	*dataFile = filepath.Join(t.TempDir(), "absent.json")

	tr, err := DecodeTracker()
	if err != nil {
		t.Fatalf("DecodeTracker: %v", err)
	}
	if len(tr.Items()) != 0 || len(tr.Snapshots()) != 0 {
		t.Error("missing data file must yield an empty tracker")
	}
}

func TestDecodeTracker_CorruptFileDegrades(t *testing.T) {
	old := *dataFile
	defer func() { *dataFile = old }()
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatal(err)
	}
	*dataFile = path

	tr, err := DecodeTracker()
	if err != nil {
		t.Fatalf("DecodeTracker: %v", err)
	}
	if len(tr.Snapshots()) != 0 {
		t.Error("corrupt data file must yield an empty tracker")
	}
}

func TestCreateItem_Classification(t *testing.T) {
	tr := networth.NewTracker()
	for _, name := range []string{"Savings", "Mortgage", "Other"} {
		if _, err := tr.AddCategory(name, nil); err != nil {
			t.Fatal(err)
		}
	}

	item, err := createItem(tr, "Monzo Savings Pot")
	if err != nil {
		t.Fatalf("createItem: %v", err)
	}
	if got := categoryName(tr, item.CategoryID); got != "Savings" {
		t.Errorf("category = %q, want %q", got, "Savings")
	}
	if item.Type != networth.Asset {
		t.Errorf("type = %v, want %v", item.Type, networth.Asset)
	}

	item, err = createItem(tr, "Flat Mortgage")
	if err != nil {
		t.Fatalf("createItem: %v", err)
	}
	if got := categoryName(tr, item.CategoryID); got != "Mortgage" {
		t.Errorf("category = %q, want %q", got, "Mortgage")
	}
	if item.Type != networth.Liability {
		t.Errorf("type = %v, want %v", item.Type, networth.Liability)
	}

	item, err = createItem(tr, "Mystery Box")
	if err != nil {
		t.Fatalf("createItem: %v", err)
	}
	if got := categoryName(tr, item.CategoryID); got != "Other" {
		t.Errorf("category = %q, want the %q fallback", got, "Other")
	}
}
