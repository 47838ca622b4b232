// Package model is the client for the external prediction service. It posts
// aggregated feature vectors and normalizes the explainability output into
// per-feature contribution percentages
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	"ekilibria/internal/core/wellness"
	perr "ekilibria/internal/platform/errors"
)

// PredictionResult is one scored week
type PredictionResult struct {
	FechaDesde    string  `json:"fecha_desde"`
	FechaHasta    string  `json:"fecha_hasta"`
	WeekType      int     `json:"week_type"`
	WeekTypeLabel string  `json:"week_type_label"`
	BurnoutIndex  float64 `json:"burnout_index"`
	// Contributions maps feature name to its share of the predicted index,
	// in percent. Empty with ContributionsUndefined set when the predicted
	// index is exactly zero
	Contributions          map[string]float64 `json:"contributions"`
	ContributionsUndefined bool               `json:"contributions_undefined,omitempty"`
}

// weekTypeLabels maps the classifier output to a display label
var weekTypeLabels = map[int]string{
	0: "healthy week",
	1: "acceptable load",
	2: "excessive load",
	3: "burnout risk",
}

// WeekTypeLabel returns the display label for a classifier output
func WeekTypeLabel(weekType int) string {
	if l, ok := weekTypeLabels[weekType]; ok {
		return l
	}
	return "unknown"
}

// Client talks to the prediction service
type Client struct {
	httpc *http.Client
	base  string
}

// New returns a client for the prediction service at base
func New(base string) *Client {
	return NewWithClient(&http.Client{Timeout: 60 * time.Second}, base)
}

// NewWithClient returns a client using the given http.Client
func NewWithClient(httpc *http.Client, base string) *Client {
	return &Client{httpc: httpc, base: base}
}

type predictRequest struct {
	Features []wellness.FeatureVector `json:"features"`
}

type predictResponse struct {
	Resultados []resultado `json:"resultados"`
}

// resultado is the service's raw per-week result. Contributions carry the
// explainer's raw values, not yet normalized to percentages
type resultado struct {
	FechaDesde    string             `json:"fecha_desde"`
	FechaHasta    string             `json:"fecha_hasta"`
	WeekType      int                `json:"week_type"`
	BurnoutIndex  float64            `json:"burnout_index"`
	Contributions map[string]float64 `json:"contributions"`
}

// Predict scores one feature vector per week, oldest first. Every vector
// must carry all twelve features; validation fails before anything is sent
func (c *Client) Predict(ctx context.Context, vectors []wellness.FeatureVector) ([]PredictionResult, error) {
	for _, v := range vectors {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(predictRequest{Features: vectors})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "encode prediction request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/predict_new", bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "prediction service request")
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, perr.Upstreamf("prediction service error: %d - %s", resp.StatusCode, string(raw))
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "decode prediction response")
	}

	out := make([]PredictionResult, 0, len(decoded.Resultados))
	for _, r := range decoded.Resultados {
		out = append(out, normalize(r))
	}
	return out, nil
}

// normalize converts raw explainer values into percentages of the predicted
// index, one decimal. A zero index makes the shares undefined
func normalize(r resultado) PredictionResult {
	res := PredictionResult{
		FechaDesde:    r.FechaDesde,
		FechaHasta:    r.FechaHasta,
		WeekType:      r.WeekType,
		WeekTypeLabel: WeekTypeLabel(r.WeekType),
		BurnoutIndex:  r.BurnoutIndex,
		Contributions: map[string]float64{},
	}
	if r.BurnoutIndex == 0 {
		res.ContributionsUndefined = true
		return res
	}
	for name, shap := range r.Contributions {
		res.Contributions[name] = math.Round(shap/r.BurnoutIndex*100*10) / 10
	}
	return res
}
