package module

import (
	"context"

	historydom "ekilibria/internal/services/api/history/domain"
	historysvc "ekilibria/internal/services/api/history/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptHistoryPort adapts the history service to the domain port interfaces
type adaptHistoryPort struct{ svc historysvc.Service }

// Record implements the domain RecorderPort interface
func (a adaptHistoryPort) Record(ctx context.Context, rec historydom.WeekRecord) (string, error) {
	return a.svc.Record(ctx, rec)
}

// List implements the domain ServicePort interface
func (a adaptHistoryPort) List(ctx context.Context, in historydom.ListInput) ([]historydom.WeekRecord, error) {
	return a.svc.List(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptHistoryPort) Get(ctx context.Context, id string) (historydom.WeekRecord, error) {
	return a.svc.Get(ctx, id)
}
