package catalog

// Catalog holds deduplicated language records in first-seen order. Membership
// is answered through a code index so large catalogs stay linear to build.
type Catalog struct {
	records []LanguageRecord
	index   map[string]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends the record unless a record with the same code is already
// present. It reports whether the record was accepted.
func (c *Catalog) Add(record LanguageRecord) bool {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, exists := c.index[record.Code]; exists {
		return false
	}
	c.index[record.Code] = len(c.records)
	c.records = append(c.records, record)
	return true
}

// Lookup returns the record registered for code.
func (c *Catalog) Lookup(code string) (LanguageRecord, bool) {
	if c == nil {
		return LanguageRecord{}, false
	}
	pos, ok := c.index[code]
	if !ok {
		return LanguageRecord{}, false
	}
	return c.records[pos], true
}

// Has reports whether code is part of the catalog.
func (c *Catalog) Has(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// Records returns a copy of the records in first-seen order.
func (c *Catalog) Records() []LanguageRecord {
	if c == nil {
		return nil
	}
	return append([]LanguageRecord(nil), c.records...)
}

// Codes returns the record codes in catalog order.
func (c *Catalog) Codes() []string {
	if c == nil {
		return nil
	}
	codes := make([]string, 0, len(c.records))
	for _, record := range c.records {
		codes = append(codes, record.Code)
	}
	return codes
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}
