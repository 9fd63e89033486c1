package console

import (
	"context"
	"sync"
	"testing"
	"time"

	"recs-admin/internal/form"
	"recs-admin/internal/transport"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type invokerFunc func(ctx context.Context, req transport.Request) transport.Outcome

func (f invokerFunc) Invoke(ctx context.Context, req transport.Request) transport.Outcome {
	return f(ctx, req)
}

func TestExecuteCreateScenario(t *testing.T) {
	var sent transport.Request
	c := New(invokerFunc(func(_ context.Context, req transport.Request) transport.Outcome {
		sent = req
		return transport.Outcome{OK: true, StatusCode: 201, Body: []byte(recordJSON)}
	}), zap.NewNop())

	s := NewSessions().Get(uuid.New())
	submitted := form.State{Name: "Blue Widget Combo", ProductID: "10", RecommendedProductID: "20", RecommendationType: "cross-sell"}
	v := c.Execute(context.Background(), s, CommandCreate, &submitted)

	if sent.Method != "POST" || sent.Path != "/recommendations" {
		t.Fatalf("unexpected request: %+v", sent)
	}
	if v.Form.ID != "42" || v.Message != "Success" {
		t.Fatalf("unexpected view: %+v", v)
	}
	if s.View() != v {
		t.Fatal("session view not updated")
	}
}

func TestExecuteRetrieveNotFoundScenario(t *testing.T) {
	c := New(invokerFunc(func(_ context.Context, req transport.Request) transport.Outcome {
		return transport.Failure(404, []byte(`{"message":"Recommendation 999 not found"}`))
	}), zap.NewNop())

	s := NewSessions().Get(uuid.New())
	submitted := form.State{ID: "999", Name: "stale", ProductID: "1", RecommendedProductID: "2", RecommendationType: "x"}
	v := c.Execute(context.Background(), s, CommandRetrieve, &submitted)

	if v.Message != "Recommendation 999 not found" {
		t.Fatalf("unexpected message: %q", v.Message)
	}
	if v.Form != (form.State{ID: "999"}) {
		t.Fatalf("editable fields should be cleared and id kept: %+v", v.Form)
	}
}

func TestExecuteDeleteScenarios(t *testing.T) {
	c := New(invokerFunc(func(_ context.Context, req transport.Request) transport.Outcome {
		if req.Path == "/recommendations/42" {
			return transport.Outcome{OK: true, StatusCode: 204}
		}
		return transport.Failure(500, []byte(`{"message":"database exploded"}`))
	}), zap.NewNop())
	sessions := NewSessions()

	ok := form.State{ID: "42", Name: "n", ProductID: "1", RecommendedProductID: "2", RecommendationType: "t"}
	v := c.Execute(context.Background(), sessions.Get(uuid.New()), CommandDelete, &ok)
	if v.Form != (form.State{}) || v.Message != "Recommendation has been Deleted!" {
		t.Fatalf("unexpected view after delete: %+v", v)
	}

	bad := form.State{ID: "7", Name: "n"}
	v = c.Execute(context.Background(), sessions.Get(uuid.New()), CommandDelete, &bad)
	if v.Form != bad || v.Message != "Server error!" {
		t.Fatalf("unexpected view after failed delete: %+v", v)
	}
}

func TestExecuteClearSendsNothing(t *testing.T) {
	c := New(invokerFunc(func(context.Context, transport.Request) transport.Outcome {
		t.Fatal("clear must not call the service")
		return transport.Outcome{}
	}), zap.NewNop())

	s := NewSessions().Get(uuid.New())
	s.apply(Update{Form: FormKeep, Message: "Success"})
	submitted := form.State{ID: "3", Name: "n"}
	v := c.Execute(context.Background(), s, CommandClear, &submitted)
	if v.Form != (form.State{}) || v.Message != "" {
		t.Fatalf("unexpected view: %+v", v)
	}
}

func TestExecuteWithoutSubmissionUsesSessionForm(t *testing.T) {
	var path string
	c := New(invokerFunc(func(_ context.Context, req transport.Request) transport.Outcome {
		path = req.Path
		return transport.Outcome{OK: true, StatusCode: 200, Body: []byte(recordJSON)}
	}), zap.NewNop())

	s := NewSessions().Get(uuid.New())
	s.apply(Update{Form: FormPopulate, Record: Render(CommandRetrieve, transport.Outcome{OK: true, Body: []byte(recordJSON)}).Record})
	c.Execute(context.Background(), s, CommandRetrieve, nil)
	if path != "/recommendations/42" {
		t.Fatalf("unexpected path: %s", path)
	}
}

func TestOverlappingCommandsLastResponseWins(t *testing.T) {
	release := make(chan struct{})
	c := New(invokerFunc(func(_ context.Context, req transport.Request) transport.Outcome {
		if req.Method == "GET" {
			<-release
			return transport.Failure(404, []byte(`{"message":"late failure"}`))
		}
		return transport.Outcome{OK: true, StatusCode: 201, Body: []byte(recordJSON)}
	}), zap.NewNop())
	s := NewSessions().Get(uuid.New())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		retrieve := form.State{ID: "999"}
		c.Execute(context.Background(), s, CommandRetrieve, &retrieve)
	}()

	// the retrieve is parked in the invoker; let the create finish first
	time.Sleep(20 * time.Millisecond)
	c.Execute(context.Background(), s, CommandCreate, &form.State{Name: "Blue Widget Combo", ProductID: "10", RecommendedProductID: "20", RecommendationType: "cross-sell"})
	if got := s.View(); got.Form.ID != "42" || got.Message != "Success" {
		t.Fatalf("unexpected view after create: %+v", got)
	}

	close(release)
	wg.Wait()

	got := s.View()
	if got.Message != "late failure" {
		t.Fatalf("late response should win: %+v", got)
	}
	if got.Form != (form.State{ID: "42"}) {
		t.Fatalf("late retrieve failure should clear the created record's fields: %+v", got.Form)
	}
}

func TestSessionsPrune(t *testing.T) {
	ss := NewSessions()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ss.now = func() time.Time { return now }

	old := uuid.New()
	ss.Get(old)
	now = now.Add(time.Hour)
	fresh := uuid.New()
	ss.Get(fresh)

	if removed := ss.Prune(30 * time.Minute); removed != 1 {
		t.Fatalf("unexpected removed count: %d", removed)
	}
	if ss.Len() != 1 {
		t.Fatalf("unexpected session count: %d", ss.Len())
	}
	if ss.Get(fresh).ID != fresh {
		t.Fatal("fresh session should survive")
	}
}

func TestExecuteUpdateWithoutIDIsStillSent(t *testing.T) {
	var sent transport.Request
	c := New(invokerFunc(func(_ context.Context, req transport.Request) transport.Outcome {
		sent = req
		return transport.Failure(405, []byte(`{"message":"Method Not Allowed"}`))
	}), zap.NewNop())

	s := NewSessions().Get(uuid.New())
	submitted := form.State{Name: "b", ProductID: "10", RecommendedProductID: "21", RecommendationType: "up-sell"}
	v := c.Execute(context.Background(), s, CommandUpdate, &submitted)

	if sent.Method != "PUT" || sent.Path != "/recommendations/" {
		t.Fatalf("unexpected request: %+v", sent)
	}
	if v.Message != "Method Not Allowed" || v.Form != submitted {
		t.Fatalf("unexpected view: %+v", v)
	}
}
