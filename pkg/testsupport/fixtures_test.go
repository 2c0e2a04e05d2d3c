package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFixtureJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.json")
	if err := os.WriteFile(path, []byte(`{"name":"ada"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var dest struct {
		Name string `json:"name"`
	}
	LoadFixtureJSON(t, path, &dest)

	if dest.Name != "ada" {
		t.Errorf("Name = %q, want ada", dest.Name)
	}
}

func TestCompareWithGolden_CreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "golden", "out.txt")

	CompareWithGolden(t, path, []byte("expected output"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("golden file was not created: %v", err)
	}
	if string(data) != "expected output" {
		t.Errorf("golden contents = %q", data)
	}

	// Second comparison against the freshly written file must pass.
	CompareWithGolden(t, path, []byte("expected output"))
}

func TestFixturePath(t *testing.T) {
	if got := FixturePath("key_scenarios.json"); got != filepath.Join("testdata", "key_scenarios.json") {
		t.Errorf("FixturePath = %q", got)
	}
}
