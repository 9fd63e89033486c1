// Package form holds the operator's current record under edit.
package form

import (
	"strconv"
	"strings"
	"unicode"

	"recs-admin/internal/dto"
)

// State is the set of bound form fields. Values are kept exactly as typed.
type State struct {
	ID                   string
	Name                 string
	ProductID            string
	RecommendedProductID string
	RecommendationType   string
}

// FromFields copies submitted form fields into a State.
func FromFields(f dto.FormFields) State {
	return State{
		ID:                   f.ID,
		Name:                 f.Name,
		ProductID:            f.ProductID,
		RecommendedProductID: f.RecommendedProductID,
		RecommendationType:   f.RecommendationType,
	}
}

// Fields returns the form as its wire shape.
func (s State) Fields() dto.FormFields {
	return dto.FormFields{
		ID:                   s.ID,
		Name:                 s.Name,
		ProductID:            s.ProductID,
		RecommendedProductID: s.RecommendedProductID,
		RecommendationType:   s.RecommendationType,
	}
}

// Populate overwrites every field from rec. A zero id means the record has
// not been assigned one and leaves the id field empty.
func (s *State) Populate(rec dto.RecommendationResponse) {
	s.ID = ""
	if rec.ID != 0 {
		s.ID = strconv.Itoa(rec.ID)
	}
	s.Name = rec.Name
	s.ProductID = strconv.Itoa(rec.ProductID)
	s.RecommendedProductID = strconv.Itoa(rec.RecommendedProductID)
	s.RecommendationType = rec.RecommendationType
}

// Clear empties the editable fields. The id field is left untouched; use
// Reset to empty it as well.
func (s *State) Clear() {
	s.Name = ""
	s.ProductID = ""
	s.RecommendedProductID = ""
	s.RecommendationType = ""
}

// Reset empties every field including the id.
func (s *State) Reset() {
	s.Clear()
	s.ID = ""
}

// Read builds the create/update payload. Product ids that do not start with
// an integer become nil and are left for the service to reject.
func (s State) Read() dto.RecommendationPayload {
	return dto.RecommendationPayload{
		Name:                 s.Name,
		ProductID:            LeadingInt(s.ProductID),
		RecommendedProductID: LeadingInt(s.RecommendedProductID),
		RecommendationType:   s.RecommendationType,
	}
}

// LeadingInt parses the optionally signed base-10 integer at the start of v,
// ignoring leading whitespace and anything after the digits: "12abc" is 12,
// "abc" and "" are nil.
func LeadingInt(v string) *int {
	v = strings.TrimLeftFunc(v, unicode.IsSpace)

	end := 0
	if end < len(v) && (v[end] == '+' || v[end] == '-') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}

	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return nil
	}
	return &n
}
