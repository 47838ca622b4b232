package domain

import (
	"context"

	"ekilibria/internal/adapters/model"
	"ekilibria/internal/core/wellness"
)

// ServicePort defines the service contract for wellbeing
type ServicePort interface {
	Extract(ctx context.Context, token string, in ExtractInput) (ExtractOutput, error)
	Predict(ctx context.Context, in PredictInput) (PredictOutput, error)
}

// PredictorPort is the seam the model service client implements
type PredictorPort interface {
	Predict(ctx context.Context, vectors []wellness.FeatureVector) ([]model.PredictionResult, error)
}
