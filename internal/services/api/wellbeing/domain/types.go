// Package domain holds DTOs for wellbeing http and service contracts
package domain

import (
	"ekilibria/internal/adapters/model"
	"ekilibria/internal/core/wellness"
)

// ExtractInput asks for the last N closed weeks of one provider account
type ExtractInput struct {
	Provider     string `json:"provider" validate:"required,oneof=google microsoft" example:"google"`
	Weeks        int    `json:"weeks,omitempty" validate:"omitempty,min=1,max=52" example:"4"`
	Aggregation  string `json:"aggregation,omitempty" validate:"omitempty,oneof=average total" example:"average"`
	AccountEmail string `json:"account_email,omitempty" validate:"omitempty,email" example:"ana@example.com"`
}

// WeekReport pairs one extracted week with its prediction when the model
// service is configured
type WeekReport struct {
	Features   wellness.FeatureVector  `json:"features"`
	Prediction *model.PredictionResult `json:"prediction,omitempty"`
}

// ExtractOutput is the extraction response, weeks oldest first
type ExtractOutput struct {
	Provider string       `json:"provider"`
	Account  string       `json:"account"`
	Weeks    []WeekReport `json:"weeks"`
}

// PredictInput carries caller-supplied feature vectors
type PredictInput struct {
	Features []wellness.FeatureVector `json:"features" validate:"required,min=1,max=52"`
}

// PredictOutput is the prediction response, one result per input vector
type PredictOutput struct {
	Results []model.PredictionResult `json:"results"`
}
