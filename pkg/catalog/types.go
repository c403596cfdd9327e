package catalog

// LanguageRecord describes a single language identity row from the catalog
// source. Records are immutable after load.
type LanguageRecord struct {
	Code           string `json:"code" yaml:"code"`
	EnglishName    string `json:"englishName" yaml:"englishName"`
	Name           string `json:"name" yaml:"name"`
	NativeSpeakers string `json:"nativeSpeakers,omitempty" yaml:"nativeSpeakers,omitempty"`
}

// NewLanguageRecord validates the required fields and applies the display
// name fallback.
func NewLanguageRecord(code, englishName, name, nativeSpeakers string) (LanguageRecord, error) {
	if code == "" {
		return LanguageRecord{}, &MissingFieldError{Field: FieldCode}
	}
	if englishName == "" {
		return LanguageRecord{}, &MissingFieldError{Field: FieldEnglishName}
	}
	if name == "" {
		name = englishName
	}
	return LanguageRecord{
		Code:           code,
		EnglishName:    englishName,
		Name:           name,
		NativeSpeakers: nativeSpeakers,
	}, nil
}

// ScriptEntry links a language to the trigrams observed for it under one
// writing script. Trigram order is frequency rank and is preserved verbatim.
type ScriptEntry struct {
	Code     string   `json:"code" yaml:"code"`
	Script   string   `json:"script" yaml:"script"`
	Trigrams []string `json:"trigrams" yaml:"trigrams"`
}

// Model is the merged output of a catalog load.
type Model struct {
	Languages *Catalog
	Scripts   *ScriptIndex
	Stats     LoadStats
}

// LoadStats counts the rows a load tolerated without failing.
type LoadStats struct {
	// DuplicateCodes counts catalog rows skipped because their code was
	// already present.
	DuplicateCodes int
	// UnknownCodes counts trigram entries dropped because their code is not
	// in the catalog.
	UnknownCodes int
}
