package curbwise

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestViolationsList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/violations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("status") != "open" || q.Get("limit") != "10" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`[{"id":"9a9e1b52-26b1-4bd6-9a0b-0f3f6e5a7c11","title":"Overgrown lawn","status":"open","severity":"low","created_at":"2026-08-01T12:00:00Z"}]`))
	}))
	got, err := client.Violations.List(context.Background(), ViolationListOptions{Status: ViolationOpen, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Overgrown lawn" {
		t.Errorf("unexpected violations %+v", got)
	}
}

func TestViolationsUpdateOmitsNilFields(t *testing.T) {
	id := uuid.MustParse("9a9e1b52-26b1-4bd6-9a0b-0f3f6e5a7c11")
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if _, ok := body["status"]; !ok {
			t.Error("expected status in body")
		}
		if _, ok := body["title"]; ok {
			t.Error("expected nil title to be omitted")
		}
		w.Write([]byte(`{"id":"9a9e1b52-26b1-4bd6-9a0b-0f3f6e5a7c11","title":"Overgrown lawn","status":"resolved","severity":"low","created_at":"2026-08-01T12:00:00Z"}`))
	}))
	status := ViolationResolved
	got, err := client.Violations.Update(context.Background(), id, ViolationUpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Status != ViolationResolved {
		t.Errorf("expected resolved, got %q", got.Status)
	}
}

func TestViolationsExportCSVReturnsRawBytes(t *testing.T) {
	csv := []byte("id,title,status\n1,Overgrown lawn,open\n")
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/violations/export-csv" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write(csv)
	}))
	got, err := client.Violations.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if !bytes.Equal(got, csv) {
		t.Errorf("expected body passed through untouched, got %q", got)
	}
}

func TestViolationsInputValidation(t *testing.T) {
	client, _ := newTestClient(t, noRequests(t))
	if _, err := client.Violations.Get(context.Background(), uuid.Nil); err == nil {
		t.Error("expected error for nil ID")
	}
	if _, err := client.Violations.Create(context.Background(), ViolationCreateRequest{}); err == nil {
		t.Error("expected error for missing title")
	}
}
