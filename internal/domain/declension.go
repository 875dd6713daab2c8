package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CombinationID identifies one cell of a part of speech's paradigm.
// Dimensional paradigms use the canonical ",<dimID>,<dimID>," form built by
// NewCombinationID; any other non-empty string is an opaque key.
type CombinationID string

// NewCombinationID joins dimension ids in template order.
func NewCombinationID(dimensionIDs ...int64) CombinationID {
	var b strings.Builder
	b.WriteByte(',')
	for _, id := range dimensionIDs {
		b.WriteString(strconv.FormatInt(id, 10))
		b.WriteByte(',')
	}
	return CombinationID(b.String())
}

// ParseCombinationID accepts the canonical ",11,12," form and the bare
// "11,12" form. Anything else is returned unchanged as an opaque key.
func ParseCombinationID(raw string) CombinationID {
	if raw == "" || strings.HasPrefix(raw, ",") {
		return CombinationID(raw)
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return CombinationID(raw)
		}
		ids = append(ids, id)
	}
	return NewCombinationID(ids...)
}

func (c CombinationID) String() string { return string(c) }

// DimensionIDs parses a canonical combination id. It returns false for
// opaque keys.
func (c CombinationID) DimensionIDs() ([]int64, bool) {
	s := string(c)
	if len(s) < 3 || s[0] != ',' || s[len(s)-1] != ',' {
		return nil, false
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// DeclensionTemplate is one axis of a part of speech's paradigm ("Number",
// "Case"), or, when Singleton is set, a single named form such as a gerund.
type DeclensionTemplate struct {
	ID         int64
	LanguageID uuid.UUID
	TypeID     int64
	Name       string
	Notes      string
	Mandatory  bool
	Position   int
	Singleton  bool
	Dimensions []DeclensionDimension
	// CombinationID keys a singleton form. Empty means ",<ID>,".
	CombinationID CombinationID
}

// SingletonID returns the combination id of a singleton template.
func (t DeclensionTemplate) SingletonID() CombinationID {
	if t.CombinationID != "" {
		return t.CombinationID
	}
	return NewCombinationID(t.ID)
}

// DeclensionDimension is one value of a template axis ("plural").
type DeclensionDimension struct {
	ID         int64
	TemplateID int64
	Name       string
	Mandatory  bool
	Position   int
}

// Combination is one generated paradigm cell.
type Combination struct {
	ID        CombinationID `json:"id"`
	Label     string        `json:"label"`
	Mandatory bool          `json:"mandatory"`
}

// CombinationSetting stores per-cell flags of a part of speech.
type CombinationSetting struct {
	TypeID        int64
	CombinationID CombinationID
	Suppressed    bool
}

// ClassFilter restricts a rule to words carrying ValueID for ClassID.
type ClassFilter struct {
	ClassID int64
	ValueID int64
}

// Transform is one regex replacement step of a rule.
type Transform struct {
	Pattern     string
	Replacement string
}

// DeclensionRule generates the form of one combination from a base word.
type DeclensionRule struct {
	ID                int64
	LanguageID        uuid.UUID
	TypeID            int64
	CombinationID     CombinationID
	Name              string
	Pattern           string
	Position          int
	ApplyToAllClasses bool
	ClassFilters      []ClassFilter
	Transforms        []Transform
}

// Validate checks the structural part of a rule. Regex validity is checked
// by the engine that compiles it.
func (r DeclensionRule) Validate() error {
	var errs FieldErrors
	if r.ID < 1 {
		errs.Add("id", "must be >= 1")
	}
	if r.TypeID < 1 {
		errs.Add("type_id", "must be >= 1")
	}
	if r.CombinationID == "" {
		errs.Add("combination_id", "required")
	}
	if r.Pattern == "" {
		errs.Add("pattern", "required")
	}
	for i, t := range r.Transforms {
		if t.Pattern == "" {
			errs.Add(fmt.Sprintf("transforms[%d].pattern", i), "required")
		}
	}
	return errs.Err()
}

// AddTransform appends a transform to the end of the list.
func (r *DeclensionRule) AddTransform(t Transform) {
	r.Transforms = append(r.Transforms, t)
}

// UpdateTransform replaces the transform at index i.
func (r *DeclensionRule) UpdateTransform(i int, t Transform) error {
	if i < 0 || i >= len(r.Transforms) {
		return fmt.Errorf("transform %d: %w", i, ErrNotFound)
	}
	r.Transforms[i] = t
	return nil
}

// DeleteTransform removes the transform at index i, keeping the relative
// order of the rest.
func (r *DeclensionRule) DeleteTransform(i int) error {
	if i < 0 || i >= len(r.Transforms) {
		return fmt.Errorf("transform %d: %w", i, ErrNotFound)
	}
	r.Transforms = slices.Delete(r.Transforms, i, i+1)
	return nil
}

// MoveTransform moves the transform at index i one step. It reports
// whether anything moved.
func (r *DeclensionRule) MoveTransform(i int, dir Direction) bool {
	if dir == DirectionUp {
		return MoveUp(r.Transforms, i)
	}
	return MoveDown(r.Transforms, i)
}

// SetApplyToAllClasses toggles the wildcard filter. Turning it on drops the
// individual filters.
func (r *DeclensionRule) SetApplyToAllClasses(all bool) {
	r.ApplyToAllClasses = all
	if all {
		r.ClassFilters = nil
	}
}

// SetClassFilter requires valueID for classID, replacing an earlier value
// for the same class and clearing the wildcard.
func (r *DeclensionRule) SetClassFilter(classID, valueID int64) {
	r.ApplyToAllClasses = false
	for i := range r.ClassFilters {
		if r.ClassFilters[i].ClassID == classID {
			r.ClassFilters[i].ValueID = valueID
			return
		}
	}
	r.ClassFilters = append(r.ClassFilters, ClassFilter{ClassID: classID, ValueID: valueID})
}

// RemoveClassFilter drops the filter for classID if present.
func (r *DeclensionRule) RemoveClassFilter(classID int64) {
	r.ClassFilters = slices.DeleteFunc(r.ClassFilters, func(f ClassFilter) bool {
		return f.ClassID == classID
	})
}

// DeclensionNode is a per-word override of one combination.
type DeclensionNode struct {
	WordID        int64
	CombinationID CombinationID
	Value         string
	Notes         string
}

// WordForms is the ordered set of overrides stored for one word.
type WordForms []DeclensionNode

// Get returns the override for a combination.
func (f WordForms) Get(id CombinationID) (DeclensionNode, bool) {
	for _, n := range f {
		if n.CombinationID == id {
			return n, true
		}
	}
	return DeclensionNode{}, false
}

// FormSource says where a declined form came from.
type FormSource string

const (
	FormSourceOverride FormSource = "OVERRIDE"
	FormSourceRule     FormSource = "RULE"
	FormSourceIdentity FormSource = "IDENTITY"
)

func (s FormSource) String() string { return string(s) }

// Form is the result of declining one word for one combination.
type Form struct {
	Value  string     `json:"value"`
	Source FormSource `json:"source"`
	RuleID int64      `json:"rule_id,omitempty"`
}

// Violation reports a mandatory combination the word does not fill.
type Violation struct {
	CombinationID CombinationID `json:"combination_id"`
	Label         string        `json:"label"`
	Message       string        `json:"message"`
}
