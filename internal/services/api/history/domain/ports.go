package domain

import "context"

// RecorderPort is the write seam other modules use to persist a scored week
type RecorderPort interface {
	Record(ctx context.Context, rec WeekRecord) (string, error)
}

// ServicePort defines the service contract for history
type ServicePort interface {
	RecorderPort
	List(ctx context.Context, in ListInput) ([]WeekRecord, error)
	Get(ctx context.Context, id string) (WeekRecord, error)
}
