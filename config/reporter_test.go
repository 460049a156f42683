package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func prepareTestReport(t *testing.T) (*Report, string) {
	t.Helper()

	dest := filepath.Join(t.TempDir(), "report.zip")
	conf := &ReporterConfig{Destination: dest}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	return r, dest
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report archive: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open archive entry %q: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read archive entry %q: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReportFinalize(t *testing.T) {
	r, dest := prepareTestReport(t)

	if r.Name() == "" {
		t.Error("Name() returned empty string for prepared report")
	}

	work := t.TempDir()
	if err := os.WriteFile(filepath.Join(work, "index.html"), []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(work, "sub"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "sub", "styles.css"), []byte("body {}"), 0644); err != nil {
		t.Fatal(err)
	}

	single := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(single, []byte(`{"document": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("result-1", work)
	r.Store("source", single)
	r.StoreData("configuration.yaml", []byte("document:\n"))
	r.Store("gone", filepath.Join(work, "does-not-exist"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, dest)

	manifest, ok := files["MANIFEST"]
	if !ok {
		t.Fatalf("report archive has no MANIFEST, entries: %v", keysOf(files))
	}
	for _, name := range []string{"result-1", "source", "configuration.yaml", "gone"} {
		if !strings.Contains(manifest, name) {
			t.Errorf("MANIFEST does not mention %q:\n%s", name, manifest)
		}
	}

	if got := files["source"]; got != `{"document": {}}` {
		t.Errorf("stored file content = %q", got)
	}
	if got := files["configuration.yaml"]; got != "document:\n" {
		t.Errorf("stored data content = %q", got)
	}
	if got := files["result-1/index.html"]; got != "<html></html>" {
		t.Errorf("stored directory file content = %q", got)
	}
	if _, ok := files["result-1/sub/styles.css"]; !ok {
		t.Errorf("nested directory entry missing, entries: %v", keysOf(files))
	}
	// absent paths stay in the manifest but produce no archive entry
	if _, ok := files["gone"]; ok {
		t.Error("entry for missing path should not be archived")
	}
}

func TestReportStoreCopy(t *testing.T) {
	r, dest := prepareTestReport(t)

	src := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(src, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("snapshot.json", src); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}

	// the copy must not see later changes to the original
	if err := os.WriteFile(src, []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("snapshot.json", src); err != nil {
		t.Fatalf("second StoreCopy() error: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, dest)
	if got := files["snapshot.json"]; got != "before" {
		t.Errorf("first copy content = %q, want %q", got, "before")
	}

	versioned := 0
	for name := range files {
		if strings.HasPrefix(name, "snapshot.json-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("got %d versioned copies, want 1, entries: %v", versioned, keysOf(files))
	}
}

func TestReportStoreConflict(t *testing.T) {
	r, _ := prepareTestReport(t)
	defer r.Close()

	defer func() {
		if recover() == nil {
			t.Error("Store() with conflicting path should panic")
		}
	}()

	r.Store("result", "/tmp/one")
	r.Store("result", "/tmp/two")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func keysOf(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
