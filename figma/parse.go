package figma

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ParseFile deserializes a files endpoint payload. Properties the renderer
// does not know about are dropped, out of range enumeration values are kept
// verbatim and interpreted at the point of use.
func ParseFile(data []byte, log *zap.Logger) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocumentShape, err)
	}
	if f.Document == nil {
		return nil, fmt.Errorf("%w: document node is missing", ErrInvalidDocumentShape)
	}

	nodes, depth := f.Document.Stats()
	log.Debug("Parsed design document",
		zap.String("name", f.Name),
		zap.String("version", f.Version),
		zap.Int("pages", len(f.Pages())),
		zap.Int("nodes", nodes),
		zap.Int("depth", depth))

	return &f, nil
}
