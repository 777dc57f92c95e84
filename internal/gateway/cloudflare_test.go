package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"zonetree/internal/model"
)

func envelopeOK(t *testing.T, w http.ResponseWriter, result any, info string) {
	t.Helper()
	body := fmt.Sprintf(`{"success":true,"errors":[],"result":%s%s}`, mustJSON(t, result), info)
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("write response: %v", err)
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestListZones_PaginatesAndSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/zones" {
			t.Errorf("path = %q, want /zones", r.URL.Path)
		}
		switch r.URL.Query().Get("page") {
		case "1":
			envelopeOK(t, w, []model.Zone{{ID: "z1", Name: "example.com"}},
				`,"result_info":{"page":1,"total_pages":2}`)
		case "2":
			envelopeOK(t, w, []model.Zone{{ID: "z2", Name: "example.org"}},
				`,"result_info":{"page":2,"total_pages":2}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	zones, err := c.ListZones(context.Background())
	if err != nil {
		t.Fatalf("ListZones: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if len(zones) != 2 || zones[0].ID != "z1" || zones[1].Name != "example.org" {
		t.Fatalf("zones = %+v", zones)
	}
}

func TestListRecords_DecodesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/zones/z1/dns_records" {
			t.Errorf("path = %q", r.URL.Path)
		}
		envelopeOK(t, w, []model.Record{
			{ID: "r1", ZoneID: "z1", Type: "A", Name: "example.com", Content: "1.1.1.1", TTL: 1, Proxied: true},
		}, "")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	recs, err := c.ListRecords(context.Background(), "z1")
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if r.Type != "A" || r.Name != "example.com" || r.Content != "1.1.1.1" || r.TTL != 1 || !r.Proxied {
		t.Fatalf("record = %+v", r)
	}
}

func TestCreateRecord_SendsPayload(t *testing.T) {
	var got model.RecordPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		envelopeOK(t, w, model.Record{ID: "new", ZoneID: "z1", Type: got.Type, Name: got.Name, Content: got.Content, TTL: got.TTL, Proxied: got.Proxied}, "")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	p := model.RecordPayload{Type: "A", Name: "www.example.com", Content: "2.2.2.2", TTL: 300, Proxied: false}
	rec, err := c.CreateRecord(context.Background(), "z1", p)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if got != p {
		t.Fatalf("server saw payload %+v, want %+v", got, p)
	}
	if rec.ID != "new" {
		t.Fatalf("record ID = %q", rec.ID)
	}
}

func TestUpdateRecord_PutsToRecordPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/zones/z1/dns_records/r9" {
			t.Errorf("path = %q", r.URL.Path)
		}
		envelopeOK(t, w, model.Record{ID: "r9"}, "")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if _, err := c.UpdateRecord(context.Background(), "z1", "r9", model.RecordPayload{Type: "A", Name: "n", Content: "c", TTL: 1}); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}
}

func TestEnvelopeError_BecomesClassifiedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":9207,"message":"Invalid record content"}],"result":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.CreateRecord(context.Background(), "z1", model.RecordPayload{Type: "A", Name: "n", Content: "bad"})
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if gerr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", gerr.StatusCode)
	}
	if gerr.Message != "Invalid record content" {
		t.Fatalf("message = %q", gerr.Message)
	}
}

func TestTransportFailure_ClassifiedWithStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, "tok")
	_, err := c.ListZones(context.Background())
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if gerr.StatusCode != 0 {
		t.Fatalf("status = %d, want 0", gerr.StatusCode)
	}
}

func TestDeleteRecord_UsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		envelopeOK(t, w, map[string]string{"id": "r1"}, "")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.DeleteRecord(context.Background(), "z1", "r1"); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/zones/z1/dns_records/r1" {
		t.Fatalf("saw %s %s", gotMethod, gotPath)
	}
}
