package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"fig2html/config"
	"fig2html/figma"
	"fig2html/state"
)

const sampleDoc = `{
  "name": "Landing",
  "version": "123456",
  "document": {
    "id": "0:0",
    "name": "Document",
    "type": "DOCUMENT",
    "children": [
      {"id": "0:1", "name": "Page 1", "type": "CANVAS", "children": []},
      {"id": "0:2", "name": "Page 2", "type": "CANVAS", "children": []}
    ]
  }
}`

func setupTestEnv(t *testing.T) context.Context {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	env.Cfg = cfg
	return ctx
}

func TestPrepare(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	c, err := Prepare(ctx, strings.NewReader(sampleDoc), "sample.json", env.Log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if c.SrcName != "sample.json" {
		t.Errorf("SrcName = %q, want sample.json", c.SrcName)
	}
	if string(c.Raw) != sampleDoc {
		t.Error("Raw does not match the input")
	}
	if c.File == nil || c.File.Name != "Landing" {
		t.Error("File was not parsed")
	}
	if c.RefID != "123456" {
		t.Errorf("RefID = %q, want the document version", c.RefID)
	}
	if len(c.WorkDir) != 0 {
		t.Errorf("WorkDir = %q, want none without a report", c.WorkDir)
	}
}

func TestPrepare_GeneratedID(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	doc := `{"name": "Landing", "document": {"id": "0:0", "type": "DOCUMENT", "children": []}}`

	c, err := Prepare(ctx, strings.NewReader(doc), "sample.json", env.Log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(c.RefID) == 0 {
		t.Fatal("RefID was not generated for a document without version")
	}
	if _, err := uuid.Parse(c.RefID); err != nil {
		t.Errorf("RefID = %q, want a valid UUID: %v", c.RefID, err)
	}
}

func TestPrepare_BadInput(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"no document", `{"name": "Landing"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Prepare(ctx, strings.NewReader(tt.data), "bad.json", env.Log)
			if !errors.Is(err, figma.ErrInvalidDocumentShape) {
				t.Errorf("Prepare() error = %v, want ErrInvalidDocumentShape", err)
			}
		})
	}
}

func TestPrepare_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(setupTestEnv(t))
	cancel()

	_, err := Prepare(ctx, strings.NewReader(sampleDoc), "sample.json", zaptest.NewLogger(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Prepare() error = %v, want context.Canceled", err)
	}
}

func TestPrepare_DebugSaves(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	rc := config.ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	rpt, err := rc.Prepare()
	if err != nil {
		t.Fatalf("prepare report: %v", err)
	}
	defer rpt.Close()
	env.Rpt = rpt

	c, err := Prepare(ctx, strings.NewReader(sampleDoc), "sample.json", env.Log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(c.WorkDir) == 0 {
		t.Fatal("Prepare() did not create a work directory for the report")
	}
	defer os.RemoveAll(c.WorkDir)

	for _, name := range []string{"sample.json_pristine", "sample.json_tree"} {
		if _, err := os.Stat(filepath.Join(c.WorkDir, name)); err != nil {
			t.Errorf("debug file %s is missing: %v", name, err)
		}
	}
}

func TestContentPage(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	c, err := Prepare(ctx, strings.NewReader(sampleDoc), "sample.json", env.Log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	page, err := c.Page(0)
	if err != nil {
		t.Fatalf("Page(0) error = %v", err)
	}
	if page.Name != "Page 1" {
		t.Errorf("Page(0).Name = %q, want Page 1", page.Name)
	}

	page, err = c.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	if page.Name != "Page 2" {
		t.Errorf("Page(1).Name = %q, want Page 2", page.Name)
	}

	if _, err := c.Page(2); err == nil {
		t.Error("Page(2) should fail, the document has two pages")
	}
	if _, err := c.Page(-1); err == nil {
		t.Error("Page(-1) should fail")
	}
}

func TestContentString(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	c, err := Prepare(ctx, strings.NewReader(sampleDoc), "sample.json", env.Log)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	out := c.String()
	if !strings.Contains(out, `source "sample.json" ref 123456`) {
		t.Errorf("String() lacks the source line:\n%s", out)
	}
	if !strings.Contains(out, `document "Landing"`) {
		t.Errorf("String() lacks the document line:\n%s", out)
	}

	var empty *Content
	if empty.String() != "<nil Content>" {
		t.Error("String() on nil receiver should be inert")
	}
}
