package console

import (
	"strings"
	"testing"

	"recs-admin/internal/dto"
	"recs-admin/internal/form"

	"github.com/gofiber/fiber/v2"
)

func TestBuildRequest(t *testing.T) {
	state := form.State{ID: "42", Name: "Blue Widget Combo", ProductID: "10", RecommendedProductID: "20", RecommendationType: "cross-sell"}

	tests := []struct {
		cmd      Command
		method   string
		path     string
		withBody bool
	}{
		{CommandCreate, fiber.MethodPost, "/recommendations", true},
		{CommandUpdate, fiber.MethodPut, "/recommendations/42", true},
		{CommandRetrieve, fiber.MethodGet, "/recommendations/42", false},
		{CommandDelete, fiber.MethodDelete, "/recommendations/42", false},
		{CommandSearch, fiber.MethodGet, "/recommendations?name=Blue+Widget+Combo&product_id=10&recommended_product_id=20&recommendation_type=cross-sell", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.cmd), func(t *testing.T) {
			req, ok := BuildRequest(tt.cmd, state)
			if !ok {
				t.Fatal("expected a request")
			}
			if req.Method != tt.method || req.Path != tt.path {
				t.Fatalf("unexpected request: got=%s %s want=%s %s", req.Method, req.Path, tt.method, tt.path)
			}
			if (req.Body != nil) != tt.withBody {
				t.Fatalf("unexpected body presence: %+v", req.Body)
			}
			if tt.withBody {
				payload, ok := req.Body.(dto.RecommendationPayload)
				if !ok {
					t.Fatalf("unexpected body type %T", req.Body)
				}
				if payload.Name != state.Name || *payload.ProductID != 10 || *payload.RecommendedProductID != 20 || payload.RecommendationType != "cross-sell" {
					t.Fatalf("unexpected payload: %+v", payload)
				}
			}
		})
	}
}

func TestBuildRequestClearSendsNothing(t *testing.T) {
	if _, ok := BuildRequest(CommandClear, form.State{ID: "1"}); ok {
		t.Fatal("clear must not build a request")
	}
}

func TestBuildRequestEmptyIDStillSent(t *testing.T) {
	req, ok := BuildRequest(CommandUpdate, form.State{Name: "x"})
	if !ok || req.Method != fiber.MethodPut || req.Path != "/recommendations/" {
		t.Fatalf("unexpected request: %+v ok=%v", req, ok)
	}
}

func TestSearchQuerySingleField(t *testing.T) {
	got := SearchQuery(form.State{ProductID: "10"})
	if got != "product_id=10" {
		t.Fatalf("unexpected query: %q", got)
	}
}

func TestSearchQueryEverySubset(t *testing.T) {
	keys := []string{"name", "product_id", "recommended_product_id", "recommendation_type"}
	values := []string{"combo", "10", "20", "up-sell"}

	for mask := 0; mask < 1<<len(keys); mask++ {
		var state form.State
		var want []string
		for i := range keys {
			if mask&(1<<i) == 0 {
				continue
			}
			switch i {
			case 0:
				state.Name = values[i]
			case 1:
				state.ProductID = values[i]
			case 2:
				state.RecommendedProductID = values[i]
			case 3:
				state.RecommendationType = values[i]
			}
			want = append(want, keys[i]+"="+values[i])
		}

		got := SearchQuery(state)
		if got != strings.Join(want, "&") {
			t.Errorf("mask %04b: got=%q want=%q", mask, got, strings.Join(want, "&"))
		}
		if strings.HasPrefix(got, "&") || strings.HasSuffix(got, "&") || strings.Contains(got, "&&") {
			t.Errorf("mask %04b: malformed query %q", mask, got)
		}
	}
}

func TestSearchWithoutFiltersListsEverything(t *testing.T) {
	req, _ := BuildRequest(CommandSearch, form.State{ID: "9"})
	if req.Path != "/recommendations" {
		t.Fatalf("unexpected path: %s", req.Path)
	}
}

func TestParseCommand(t *testing.T) {
	if cmd, err := ParseCommand(" Search "); err != nil || cmd != CommandSearch {
		t.Fatalf("ParseCommand: cmd=%q err=%v", cmd, err)
	}
	if _, err := ParseCommand("purge"); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}
