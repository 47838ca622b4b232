// Package wellness derives weekly workload features from workspace activity
// records. Extractors are pure functions over already-fetched records; nothing
// here performs I/O
package wellness

import (
	"encoding/json"
	"time"

	perr "ekilibria/internal/platform/errors"
)

// FeatureNames lists the twelve model features in the order the models were
// trained with. The order matters only when building model input vectors
var FeatureNames = []string{
	"num_events",
	"num_events_outside_hours",
	"total_meeting_hours",
	"avg_meeting_duration",
	"meetings_weekend",
	"emails_sent",
	"emails_sent_out_of_hours",
	"docs_created",
	"docs_edited",
	"num_meetings_no_breaks",
	"emails_received",
	"num_overlapping_meetings",
}

// Direction tags a message as sent or received
type Direction string

const (
	// DirectionSent marks a message the user sent
	DirectionSent Direction = "sent"
	// DirectionReceived marks a message the user received
	DirectionReceived Direction = "received"
)

// CalendarEvent is a provider-neutral meeting interval
// AllDay events carry no time-of-day component and are excluded from metrics
type CalendarEvent struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// MessageRecord is a provider-neutral mail timestamp
type MessageRecord struct {
	Timestamp time.Time
	Direction Direction
}

// FileRecord is provider-neutral document metadata
type FileRecord struct {
	CreatedAt  time.Time
	ModifiedAt time.Time
	Owner      string
	LastEditor string
}

// FeatureVector is one aggregated week of features plus its window bounds
// it serializes flat: fecha_desde, fecha_hasta, and the twelve feature keys
type FeatureVector struct {
	FechaDesde string
	FechaHasta string
	Features   map[string]float64
}

// Missing returns the required feature keys absent from the vector, in
// trained order
func (v FeatureVector) Missing() []string {
	var out []string
	for _, name := range FeatureNames {
		if _, ok := v.Features[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Validate fails with a MissingFeature error unless all twelve keys are set
func (v FeatureVector) Validate() error {
	if missing := v.Missing(); len(missing) > 0 {
		return perr.MissingFeatures(missing)
	}
	return nil
}

// Ordered returns the feature values in trained order, validating first
func (v FeatureVector) Ordered() ([]float64, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, len(FeatureNames))
	for i, name := range FeatureNames {
		out[i] = v.Features[name]
	}
	return out, nil
}

// MarshalJSON flattens window bounds and features into a single object
func (v FeatureVector) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(v.Features)+2)
	flat["fecha_desde"] = v.FechaDesde
	flat["fecha_hasta"] = v.FechaHasta
	for k, val := range v.Features {
		flat[k] = val
	}
	return json.Marshal(flat)
}

// UnmarshalJSON accepts the flat wire form
func (v *FeatureVector) UnmarshalJSON(b []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}
	v.Features = make(map[string]float64, len(flat))
	for k, raw := range flat {
		switch k {
		case "fecha_desde":
			if err := json.Unmarshal(raw, &v.FechaDesde); err != nil {
				return err
			}
		case "fecha_hasta":
			if err := json.Unmarshal(raw, &v.FechaHasta); err != nil {
				return err
			}
		default:
			var f float64
			if err := json.Unmarshal(raw, &f); err != nil {
				return err
			}
			v.Features[k] = f
		}
	}
	return nil
}
