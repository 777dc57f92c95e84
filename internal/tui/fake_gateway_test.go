package tui

import (
	"context"
	"fmt"
	"sync"

	"zonetree/internal/gateway"
	"zonetree/internal/model"
)

// fakeGateway is an in-memory Gateway for controller and dispatcher tests.
// Calls are journaled for order assertions, errors are injectable per
// method, and every call observes its context so cancellation-by-
// supersession is visible.
type fakeGateway struct {
	mu      sync.Mutex
	zones   []model.Zone
	records map[string][]model.Record
	nextID  int

	calls []string

	listZonesErr   error
	listRecordsErr error
	createErr      error
	updateErr      error
	deleteErr      error
}

func newFakeGateway(zones []model.Zone, records map[string][]model.Record) *fakeGateway {
	if records == nil {
		records = map[string][]model.Record{}
	}
	return &fakeGateway{zones: zones, records: records, nextID: 1}
}

func (f *fakeGateway) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) ListZones(ctx context.Context) ([]model.Zone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListZones")
	if err := ctx.Err(); err != nil {
		return nil, &gateway.Error{Message: err.Error()}
	}
	if f.listZonesErr != nil {
		return nil, f.listZonesErr
	}
	return append([]model.Zone(nil), f.zones...), nil
}

func (f *fakeGateway) ListRecords(ctx context.Context, zoneID string) ([]model.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListRecords:" + zoneID)
	if err := ctx.Err(); err != nil {
		return nil, &gateway.Error{Message: err.Error()}
	}
	if f.listRecordsErr != nil {
		return nil, f.listRecordsErr
	}
	return append([]model.Record(nil), f.records[zoneID]...), nil
}

func (f *fakeGateway) CreateRecord(ctx context.Context, zoneID string, payload model.RecordPayload) (model.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("CreateRecord:%s:%s %s", zoneID, payload.Type, payload.Name))
	if err := ctx.Err(); err != nil {
		return model.Record{}, &gateway.Error{Message: err.Error()}
	}
	if f.createErr != nil {
		return model.Record{}, f.createErr
	}
	rec := model.Record{
		ID:      fmt.Sprintf("rec-%d", f.nextID),
		ZoneID:  zoneID,
		Type:    payload.Type,
		Name:    payload.Name,
		Content: payload.Content,
		TTL:     payload.TTL,
		Proxied: payload.Proxied,
	}
	f.nextID++
	f.records[zoneID] = append(f.records[zoneID], rec)
	return rec, nil
}

func (f *fakeGateway) UpdateRecord(ctx context.Context, zoneID, recordID string, payload model.RecordPayload) (model.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("UpdateRecord:%s:%s:%s=%s", zoneID, recordID, payload.Name, payload.Content))
	if err := ctx.Err(); err != nil {
		return model.Record{}, &gateway.Error{Message: err.Error()}
	}
	if f.updateErr != nil {
		return model.Record{}, f.updateErr
	}
	for i, r := range f.records[zoneID] {
		if r.ID == recordID {
			r.Type = payload.Type
			r.Name = payload.Name
			r.Content = payload.Content
			r.TTL = payload.TTL
			r.Proxied = payload.Proxied
			f.records[zoneID][i] = r
			return r, nil
		}
	}
	return model.Record{}, &gateway.Error{Message: "record not found", StatusCode: 404}
}

func (f *fakeGateway) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteRecord:" + zoneID + ":" + recordID)
	if err := ctx.Err(); err != nil {
		return &gateway.Error{Message: err.Error()}
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	recs := f.records[zoneID]
	for i, r := range recs {
		if r.ID == recordID {
			f.records[zoneID] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return &gateway.Error{Message: "record not found", StatusCode: 404}
}
