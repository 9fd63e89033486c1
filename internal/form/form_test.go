package form

import (
	"encoding/json"
	"testing"

	"recs-admin/internal/dto"
)

func TestPopulateOverwritesEveryField(t *testing.T) {
	s := State{ID: "1", Name: "old", ProductID: "x", RecommendedProductID: "y", RecommendationType: "z"}
	s.Populate(dto.RecommendationResponse{
		ID:                   42,
		Name:                 "Blue Widget Combo",
		ProductID:            10,
		RecommendedProductID: 20,
		RecommendationType:   "cross-sell",
		CreatedAt:            "2024-01-01T00:00:00Z",
	})

	want := State{ID: "42", Name: "Blue Widget Combo", ProductID: "10", RecommendedProductID: "20", RecommendationType: "cross-sell"}
	if s != want {
		t.Fatalf("unexpected state: got=%+v want=%+v", s, want)
	}
}

func TestClearKeepsID(t *testing.T) {
	s := State{ID: "7", Name: "a", ProductID: "1", RecommendedProductID: "2", RecommendationType: "up-sell"}
	s.Clear()
	if s != (State{ID: "7"}) {
		t.Fatalf("clear should only keep the id: %+v", s)
	}
}

func TestResetEmptiesID(t *testing.T) {
	s := State{ID: "7", Name: "a", ProductID: "1", RecommendedProductID: "2", RecommendationType: "up-sell"}
	s.Reset()
	if s != (State{}) {
		t.Fatalf("reset left values behind: %+v", s)
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{in: "10", want: intPtr(10)},
		{in: "  12", want: intPtr(12)},
		{in: "12abc", want: intPtr(12)},
		{in: "-3", want: intPtr(-3)},
		{in: "+4", want: intPtr(4)},
		{in: "3.9", want: intPtr(3)},
		{in: "", want: nil},
		{in: "abc", want: nil},
		{in: "-", want: nil},
		{in: "99999999999999999999999", want: nil},
	}

	for _, tt := range tests {
		got := LeadingInt(tt.in)
		switch {
		case got == nil && tt.want == nil:
		case got == nil || tt.want == nil:
			t.Errorf("LeadingInt(%q) = %v, want %v", tt.in, got, tt.want)
		case *got != *tt.want:
			t.Errorf("LeadingInt(%q) = %d, want %d", tt.in, *got, *tt.want)
		}
	}
}

func TestReadSendsNullForInvalidNumbers(t *testing.T) {
	s := State{ID: "5", Name: "combo", ProductID: "ten", RecommendedProductID: "20", RecommendationType: "cross-sell"}

	body, err := json.Marshal(s.Read())
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	want := `{"name":"combo","product_id":null,"recommended_product_id":20,"recommendation_type":"cross-sell"}`
	if string(body) != want {
		t.Fatalf("unexpected payload: got=%s want=%s", body, want)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	f := dto.FormFields{ID: "1", Name: "n", ProductID: "2", RecommendedProductID: "3", RecommendationType: "t"}
	if got := FromFields(f).Fields(); got != f {
		t.Fatalf("fields changed: got=%+v want=%+v", got, f)
	}
}

func intPtr(n int) *int { return &n }
