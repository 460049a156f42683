package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"fig2html/config"
	"fig2html/content"
	"fig2html/state"
)

// buildOutputDir returns the directory rendered page files for a document go
// to. It uses either default naming scheme or user-defined template and
// takes into account whether to preserve source directory structure on the
// output. Single document output lands in the destination itself, batch
// sources get a subdirectory per snapshot. It cleans up path segments and if
// requested transliterates them.
func buildOutputDir(c *content.Content, src, dst string, batch bool, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)

	if env.Cfg.Document.OutputNameTemplate != "" {
		if expandedName := expandOutputNameTemplate(c, env); expandedName != "" {
			return assemblePathWithSubdirs(outDir, expandedName, env)
		}
		// fallback to default naming if template expansion failed
	}

	if !batch {
		return outDir
	}
	return filepath.Join(outDir, buildDefaultDirName(src, env))
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildDefaultDirName(src string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return cleanPathSegment(baseName, env)
}

// pageDirName names the per page subdirectory used when every page of a
// document is rendered. Index is zero based, directories are numbered from
// one.
func pageDirName(i int, name string) string {
	s := slug.Make(name)
	if len(s) == 0 {
		s = "page"
	}
	return fmt.Sprintf("%02d-%s", i+1, s)
}

func expandOutputNameTemplate(c *content.Content, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(c, config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate, env.FileKey)
	if err != nil {
		env.Log.Warn("Unable to prepare output directory name", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(expandedName)
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output
// path, cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, env *state.LocalEnv) string {
	pathSegments := splitAndCleanPath(expandedName)

	if len(pathSegments) == 0 {
		return outDir
	}

	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
		path = head
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Document.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
