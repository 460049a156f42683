package convert

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"fig2html/config"
	"fig2html/content"
	"fig2html/figma"
	"fig2html/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs bool, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	env := &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
	return env
}

func setupTestContentForPath(t *testing.T) *content.Content {
	t.Helper()
	return &content.Content{
		SrcName: "testdesign.json",
		RefID:   "42",
		File: &figma.File{
			Name:    "Test Design",
			Version: "42",
			Document: &figma.Node{
				ID:   "0:0",
				Type: "DOCUMENT",
				Children: []*figma.Node{
					{ID: "0:1", Name: "Page 1", Type: "CANVAS"},
				},
			},
		},
	}
}

func TestBuildOutputDir_SingleDocument(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, false, false, "")

	result := buildOutputDir(c, "design.json", "/output", false, env)
	expected := "/output"

	if result != expected {
		t.Errorf("buildOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildOutputDir_Batch_NoDirs(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "")

	result := buildOutputDir(c, "designs/team/landing.json", "/output", true, env)
	expected := filepath.Join("/output", "landing")

	if result != expected {
		t.Errorf("buildOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildOutputDir_Batch_WithDirs(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, false, false, "")

	result := buildOutputDir(c, "designs/team/landing.json", "/output", true, env)
	expected := filepath.Join("/output", "designs", "team", "landing")

	if result != expected {
		t.Errorf("buildOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildOutputDir_Transliterate(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, true, true, "")

	result := buildOutputDir(c, "Книга.json", "/output", true, env)
	expected := filepath.Join("/output", "kniga")

	if result != expected {
		t.Errorf("buildOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildOutputDir_Template(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "{{ .Name }}/v{{ .Version }}")

	result := buildOutputDir(c, "design.json", "/output", false, env)
	expected := filepath.Join("/output", "Test Design", "v42")

	if result != expected {
		t.Errorf("buildOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildOutputDir_TemplateTransliterate(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, true, true, "{{ .Name }}")

	result := buildOutputDir(c, "design.json", "/output", false, env)
	expected := filepath.Join("/output", "test-design")

	if result != expected {
		t.Errorf("buildOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildOutputDir_TemplateFallback(t *testing.T) {
	c := setupTestContentForPath(t)
	env := setupTestEnvForOutputPath(t, true, false, "{{ .NoSuchField }}")

	// expansion fails, single documents fall back to the destination itself
	result := buildOutputDir(c, "design.json", "/output", false, env)
	if result != "/output" {
		t.Errorf("buildOutputDir() = %q, want fallback to /output", result)
	}

	// and batch documents to the snapshot name
	result = buildOutputDir(c, "design.json", "/output", true, env)
	expected := filepath.Join("/output", "design")
	if result != expected {
		t.Errorf("buildOutputDir() = %q, want %q", result, expected)
	}
}

func TestDetermineOutputDir_NoDirs(t *testing.T) {
	env := setupTestEnvForOutputPath(t, true, false, "")

	result := determineOutputDir("designs/team/landing.json", "/output", env)
	expected := "/output"

	if result != expected {
		t.Errorf("determineOutputDir() = %q, want %q", result, expected)
	}
}

func TestDetermineOutputDir_WithDirs(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, "")

	result := determineOutputDir("designs/team/landing.json", "/output", env)
	expected := filepath.Join("/output", "designs", "team")

	if result != expected {
		t.Errorf("determineOutputDir() = %q, want %q", result, expected)
	}
}

func TestBuildDefaultDirName(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		transliterate bool
		expected      string
	}{
		{"simple name", "design.json", false, "design"},
		{"with path", "path/to/design.json", false, "design"},
		{"no extension", "design", false, "design"},
		{"transliterate", "Книга.json", true, "kniga"},
		{"nothing left", ".json", false, "_bad_file_name_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := buildDefaultDirName(tt.src, env)
			if result != tt.expected {
				t.Errorf("buildDefaultDirName() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestPageDirName(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		page     string
		expected string
	}{
		{"first page", 0, "Page 1", "01-page-1"},
		{"two digit index", 11, "Cover", "12-cover"},
		{"empty name", 2, "", "03-page"},
		{"cyrillic name", 0, "Книга", "01-kniga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pageDirName(tt.index, tt.page)
			if result != tt.expected {
				t.Errorf("pageDirName() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{"simple path", "name/version", []string{"name", "version"}},
		{"single segment", "design", []string{"design"}},
		{"with trailing slash", "name/version/", []string{"name", "version"}},
		{"three levels", "team/name/version", []string{"team", "name", "version"}},
		{"empty path", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndCleanPath(tt.path)
			if len(result) != len(tt.expected) {
				t.Errorf("splitAndCleanPath() length = %d, want %d", len(result), len(tt.expected))
				return
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndCleanPath()[%d] = %q, want %q", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCleanPathSegment(t *testing.T) {
	tests := []struct {
		name          string
		segment       string
		transliterate bool
		expected      string
	}{
		{"simple segment", "design", false, "design"},
		{"with spaces", "My Design", false, "My Design"},
		{"transliterate cyrillic", "Автор", true, "avtor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := cleanPathSegment(tt.segment, env)
			if result != tt.expected {
				t.Errorf("cleanPathSegment() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestAssemblePathWithSubdirs(t *testing.T) {
	tests := []struct {
		name          string
		outDir        string
		expandedName  string
		transliterate bool
		expected      string
	}{
		{
			"simple template",
			"/output",
			"name/version",
			false,
			filepath.Join("/output", "name", "version"),
		},
		{
			"single level",
			"/output",
			"design",
			false,
			filepath.Join("/output", "design"),
		},
		{
			"with transliterate",
			"/output",
			"Автор/Книга",
			true,
			filepath.Join("/output", "avtor", "kniga"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")

			result := assemblePathWithSubdirs(tt.outDir, tt.expandedName, env)
			if result != tt.expected {
				t.Errorf("assemblePathWithSubdirs() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestAssemblePathWithSubdirs_EmptyPath(t *testing.T) {
	env := setupTestEnvForOutputPath(t, true, false, "")

	result := assemblePathWithSubdirs("/output", "", env)
	expected := "/output"

	if result != expected {
		t.Errorf("assemblePathWithSubdirs() with empty path = %q, want %q", result, expected)
	}
}
