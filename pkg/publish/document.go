package publish

import "strings"

// DocumentOption configures a DocumentPublisher.
type DocumentOption func(*DocumentPublisher)

// WithLocator swaps the region matching strategy.
func WithLocator(locator Locator) DocumentOption {
	return func(p *DocumentPublisher) {
		if locator != nil {
			p.locator = locator
		}
	}
}

// DocumentPublisher substitutes a rendered table into an existing document.
type DocumentPublisher struct {
	locator Locator
}

// NewDocumentPublisher constructs a publisher using LineLocator with the
// default anchor unless overridden.
func NewDocumentPublisher(options ...DocumentOption) *DocumentPublisher {
	p := &DocumentPublisher{locator: LineLocator{Anchor: DefaultAnchor}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Publish replaces the table region of document with table, leaving the
// surrounding content untouched. A missing region yields ErrAnchorNotFound.
func (p *DocumentPublisher) Publish(document, table string) (string, error) {
	region, err := p.locator.Locate(document)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(table, "\n") {
		table += "\n"
	}

	var b strings.Builder
	b.Grow(len(document) - (region.End - region.Start) + len(table))
	b.WriteString(document[:region.Start])
	b.WriteString(table)
	b.WriteString(document[region.End:])
	return b.String(), nil
}

// Extract returns the current table region of document.
func (p *DocumentPublisher) Extract(document string) (string, error) {
	region, err := p.locator.Locate(document)
	if err != nil {
		return "", err
	}
	return region.Text(document), nil
}
