package pivspi

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadData(t *testing.T) {
	const doc = `
- name: Speed
  kobold: 5
  troglodyte: 2.5
- name: Luck
  kobold: 1
  troglodyte: 3
`
	cats, err := ReadData(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadData: %v", err)
	}
	want := []Category{{"Speed", 5, 2.5}, {"Luck", 1, 3}}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories", len(cats))
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("cats[%d] = %+v, want %+v", i, cats[i], want[i])
		}
	}
}

func TestReadDataRejects(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"empty list":    "[]",
		"unknown field": "- name: X\n  kobold: 1\n  troglodyte: 1\n  goblin: 2\n",
		"negative":      "- name: X\n  kobold: -1\n  troglodyte: 1\n",
		"all zero":      "- name: X\n  kobold: 0\n  troglodyte: 0\n",
		"one-sided":     "- name: X\n  kobold: 0\n  troglodyte: 3\n",
		"not a list":    "name: X\n",
	}
	for name, doc := range cases {
		if _, err := ReadData(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := ReadData(strings.NewReader("")); !errors.Is(err, ErrNoCategories) {
		t.Errorf("empty: err = %v, want ErrNoCategories", err)
	}
}

func TestLoadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.yaml")
	if err := os.WriteFile(path, []byte("- {name: A, kobold: 2, troglodyte: 1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cats, err := LoadData(path)
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "A" {
		t.Fatalf("cats = %+v", cats)
	}

	_, err = LoadData(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: err = %v", err)
	}
}

func TestDefaultsAndColors(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 7 || cats[0].Name != "Strength" || cats[6].Name != "Stealth" {
		t.Fatalf("defaults = %+v", cats)
	}
	if err := validate(cats); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if SliceColor(8) != SliceColor(0) {
		t.Fatal("colours should cycle every eight categories")
	}
}
