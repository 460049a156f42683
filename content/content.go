package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fig2html/figma"
	"fig2html/misc"
	"fig2html/state"
)

// Content encapsulates both the raw design document JSON, the way it came
// from a file or from the service, and the parsed node tree derived from it.
type Content struct {
	SrcName string
	Raw     []byte
	File    *figma.File
	RefID   string
	WorkDir string
}

// Prepare reads, parses and prepares a design document for conversion.
func Prepare(ctx context.Context, r io.Reader, srcName string, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}

	f, err := figma.ParseFile(raw, log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}

	// Make sure document reference ID is usable. The service always returns a
	// version, documents edited by hand may not have one.
	refID := f.Version
	if len(refID) == 0 {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("unable to generate new document ID: %w", err)
		}
		refID = id.String()
		log.Warn("Document has no version, correcting", zap.String("name", f.Name), zap.String("new_id", refID))
	}

	c := &Content{
		SrcName: srcName,
		Raw:     raw,
		File:    f,
		RefID:   refID,
	}

	// Save original and parsed documents for debugging
	if env.Rpt != nil {
		tmpDir, err := os.MkdirTemp("", misc.GetAppName()+"-")
		if err != nil {
			return nil, fmt.Errorf("unable to create temporary directory: %w", err)
		}
		c.WorkDir = tmpDir
		env.Rpt.Store(fmt.Sprintf("%s-%s", misc.GetAppName(), refID), tmpDir)

		baseSrcName := filepath.Base(srcName)
		if err := os.WriteFile(filepath.Join(tmpDir, baseSrcName+"_pristine"), raw, 0644); err != nil {
			return nil, fmt.Errorf("unable to write input doc for debugging: %w", err)
		}
		if err := os.WriteFile(filepath.Join(tmpDir, baseSrcName+"_tree"), []byte(c.String()), 0644); err != nil {
			return nil, fmt.Errorf("unable to write parsed doc for debugging: %w", err)
		}
	}

	return c, nil
}

// Page returns the page subtree with the given zero based index.
func (c *Content) Page(i int) (*figma.Node, error) {
	pages := c.File.Pages()
	if i < 0 || i >= len(pages) {
		return nil, fmt.Errorf("document %q has %d page(s), there is no page %d", c.File.Name, len(pages), i+1)
	}
	return pages[i], nil
}
