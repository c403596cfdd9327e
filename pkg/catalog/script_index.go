package catalog

// ScriptIndex maps script names to their entries while remembering the order
// in which scripts were first seen.
type ScriptIndex struct {
	order   []string
	entries map[string][]ScriptEntry
}

// NewScriptIndex returns an empty index.
func NewScriptIndex() *ScriptIndex {
	return &ScriptIndex{entries: make(map[string][]ScriptEntry)}
}

// Ensure registers script without adding entries. Calling it for a known
// script is a no-op.
func (s *ScriptIndex) Ensure(script string) {
	if s.entries == nil {
		s.entries = make(map[string][]ScriptEntry)
	}
	if _, ok := s.entries[script]; ok {
		return
	}
	s.order = append(s.order, script)
	s.entries[script] = []ScriptEntry{}
}

// Append adds entry to the list of its script, registering the script first
// when needed.
func (s *ScriptIndex) Append(entry ScriptEntry) {
	s.Ensure(entry.Script)
	s.entries[entry.Script] = append(s.entries[entry.Script], entry)
}

// Put stores entry under its script. An entry already registered for the same
// code keeps its position and takes the new trigrams; Put reports whether that
// happened.
func (s *ScriptIndex) Put(entry ScriptEntry) bool {
	s.Ensure(entry.Script)
	entries := s.entries[entry.Script]
	for i := range entries {
		if entries[i].Code == entry.Code {
			entries[i] = entry
			return true
		}
	}
	s.entries[entry.Script] = append(entries, entry)
	return false
}

// Scripts returns script names in first-seen order.
func (s *ScriptIndex) Scripts() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Entries returns a copy of the entries registered for script.
func (s *ScriptIndex) Entries(script string) []ScriptEntry {
	if s == nil {
		return nil
	}
	entries, ok := s.entries[script]
	if !ok {
		return nil
	}
	return append([]ScriptEntry(nil), entries...)
}

// Len returns the number of scripts.
func (s *ScriptIndex) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// EntryCount returns the total number of entries across scripts.
func (s *ScriptIndex) EntryCount() int {
	if s == nil {
		return 0
	}
	total := 0
	for _, entries := range s.entries {
		total += len(entries)
	}
	return total
}
