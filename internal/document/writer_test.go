package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sepgen/sepgen/internal/schema"
)

func TestGenerateWritesFile(t *testing.T) {
	f := minimalForm(t)
	dir := t.TempDir()

	name, err := Generate(f.Registry, dir)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if name != "SEPAABBCC112233.cnf.xml" {
		t.Errorf("Generate() returned %q, want SEPAABBCC112233.cnf.xml", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading generated file failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("generated file does not start with an XML declaration")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir holds %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestGenerateShapeErrorWritesNothing(t *testing.T) {
	f, err := schema.NewPhoneForm()
	if err != nil {
		t.Fatalf("NewPhoneForm() failed: %v", err)
	}
	dir := t.TempDir()

	if _, err := Generate(f.Registry, dir); !IsShapeError(err) {
		t.Fatalf("Generate() with empty MAC = %v, want shape error", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("shape error left %d entries in the output dir", len(entries))
	}
}

func TestGenerateDestinationError(t *testing.T) {
	f := minimalForm(t)
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	_, err := Generate(f.Registry, dir)
	if err == nil {
		t.Fatal("Generate() into a missing directory succeeded")
	}
	if !IsDestinationError(err) {
		t.Errorf("Generate() error = %v, want destination error", err)
	}
	if msg := ShortMessage(err); !strings.Contains(msg, "output directory") {
		t.Errorf("ShortMessage() = %q, want operator hint about the output directory", msg)
	}
}
