package vlsp

// Entry holds data for a single dictionary entry.
// Entries are built by Parser and are not modified afterwards.
type Entry struct {
	Headword     string
	PartOfSpeech string
	// Definition may contain inner markup of the source document as literal text
	Definition string
	// Synonyms is nil when the entry has no synonym data
	Synonyms *string
	// Antonyms is nil when the entry has no antonym data
	Antonyms *string
}

// HasSynonyms reports whether synonym data was present
func (e Entry) HasSynonyms() bool {
	return e.Synonyms != nil
}

// HasAntonyms reports whether antonym data was present
func (e Entry) HasAntonyms() bool {
	return e.Antonyms != nil
}
