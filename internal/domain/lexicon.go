package domain

import (
	"slices"

	"github.com/google/uuid"
)

// PartOfSpeech is a user-defined word type ("noun", "verb", ...). Declension
// templates and rules are keyed by its ID.
type PartOfSpeech struct {
	ID         int64
	LanguageID uuid.UUID
	Name       string
	Notes      string
}

// WordClass is a grammatical category such as gender or animacy.
type WordClass struct {
	ID         int64
	LanguageID uuid.UUID
	Name       string
	// FreeText classes accept any value; the word stores no value id.
	FreeText bool
	// TypeIDs restricts the class to parts of speech. Empty applies to all.
	TypeIDs []int64
	Values  []WordClassValue
}

// AppliesToType reports whether words of the given type carry this class.
func (c WordClass) AppliesToType(typeID int64) bool {
	return len(c.TypeIDs) == 0 || slices.Contains(c.TypeIDs, typeID)
}

// HasValue reports whether valueID is one of the enumerated values.
func (c WordClass) HasValue(valueID int64) bool {
	for _, v := range c.Values {
		if v.ID == valueID {
			return true
		}
	}
	return false
}

// WordClassValue is one enumerated value of a class ("masculine").
type WordClassValue struct {
	ID      int64
	ClassID int64
	Value   string
}

// Word is a lexicon entry in the constructed language.
type Word struct {
	ID         int64
	LanguageID uuid.UUID
	Value      string
	// TypeID is nil for words without a part of speech.
	TypeID *int64
	// Classes maps class id to the selected value id.
	Classes map[int64]int64
}

// HasType reports whether the word carries the given part of speech.
func (w Word) HasType(typeID int64) bool {
	return w.TypeID != nil && *w.TypeID == typeID
}

// HasClassValue reports whether the word carries valueID for classID.
func (w Word) HasClassValue(classID, valueID int64) bool {
	v, ok := w.Classes[classID]
	return ok && v == valueID
}

// TypeHasClasses reports whether any class applies to typeID.
func TypeHasClasses(classes []WordClass, typeID int64) bool {
	for _, c := range classes {
		if c.AppliesToType(typeID) {
			return true
		}
	}
	return false
}

// WordFilter narrows a word listing. Zero values mean "no filter".
type WordFilter struct {
	TypeID *int64
	// Prefix matches the start of the word value, case-insensitive.
	Prefix string
	Limit  uint64
	Offset uint64
}
