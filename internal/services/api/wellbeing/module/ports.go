package module

import (
	"context"

	historydom "ekilibria/internal/services/api/history/domain"
	welldom "ekilibria/internal/services/api/wellbeing/domain"
	wellsvc "ekilibria/internal/services/api/wellbeing/service"
)

// Ports declares the cross-module ports wellbeing consumes
type Ports struct {
	// Recorder persists scored weeks, usually the history module's port
	Recorder historydom.RecorderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptWellbeingPort adapts the wellbeing service to the domain port interface
type adaptWellbeingPort struct{ svc wellsvc.Service }

// Extract implements the domain ServicePort interface
func (a adaptWellbeingPort) Extract(ctx context.Context, token string, in welldom.ExtractInput) (welldom.ExtractOutput, error) {
	return a.svc.Extract(ctx, token, in)
}

// Predict implements the domain ServicePort interface
func (a adaptWellbeingPort) Predict(ctx context.Context, in welldom.PredictInput) (welldom.PredictOutput, error) {
	return a.svc.Predict(ctx, in)
}
