package gateway

import (
	"context"
	"fmt"

	"zonetree/internal/model"
)

// Gateway is the remote resource surface the tree controller and mutation
// dispatcher run against. Implementations return either a typed result or
// an *Error; a nil error implies the result is valid.
type Gateway interface {
	ListZones(ctx context.Context) ([]model.Zone, error)
	ListRecords(ctx context.Context, zoneID string) ([]model.Record, error)
	CreateRecord(ctx context.Context, zoneID string, payload model.RecordPayload) (model.Record, error)
	UpdateRecord(ctx context.Context, zoneID, recordID string, payload model.RecordPayload) (model.Record, error)
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}

// Error is a classified gateway failure: a human-readable message plus the
// remote status code when one was received (0 for transport failures).
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func errorf(status int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), StatusCode: status}
}
