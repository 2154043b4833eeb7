package dump

import (
	"encoding/xml"
	"fmt"

	"github.com/linkgraph/wikifirst/internal/model"
)

// DecodePage parses one raw <page> block into a model.Page.
//
// Elements not declared on model.Page are ignored, so the decoder
// tolerates the many metadata elements real exports carry (ids,
// namespaces, contributor blocks). A malformed or schema-mismatched
// fragment returns an error; callers treat that as a filterable
// condition rather than a fatal one.
func DecodePage(fragment string) (*model.Page, error) {
	var page model.Page
	if err := xml.Unmarshal([]byte(fragment), &page); err != nil {
		return nil, fmt.Errorf("decode page block: %w", err)
	}
	return &page, nil
}
