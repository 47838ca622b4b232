// Package http provides http transport for wellbeing
package http

import (
	stdhttp "net/http"

	"ekilibria/internal/modkit/httpkit"
	"ekilibria/internal/platform/net/middleware"
	"ekilibria/internal/services/api/wellbeing/domain"
	svc "ekilibria/internal/services/api/wellbeing/service"
)

// Register mounts wellbeing endpoints on the given router
// extract needs the caller's provider OAuth token, so it sits behind bearer auth
func Register(r httpkit.Router, auth middleware.AuthPort, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.ExtractInput](pr, "/extract", h.extract)
	})
	httpkit.PostJSON[domain.PredictInput](r, "/predict", h.predict)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /wellbeing/extract Wellbeing wellbeingExtract
// @Summary Extract feature vectors for the last N closed weeks
// @Tags Wellbeing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body domain.ExtractInput true "Extraction request"
// @Success 200 {object} domain.ExtractOutput "ok"
// @Router /wellbeing/extract [post]
func (h *handlers) extract(r *stdhttp.Request, in domain.ExtractInput) (any, error) {
	token := httpkit.MustBearerToken(r)
	return h.svc.Extract(r.Context(), token, in)
}

// swagger:route POST /wellbeing/predict Wellbeing wellbeingPredict
// @Summary Score caller-supplied feature vectors
// @Tags Wellbeing
// @Accept json
// @Produce json
// @Param payload body domain.PredictInput true "Feature vectors"
// @Success 200 {object} domain.PredictOutput "ok"
// @Router /wellbeing/predict [post]
func (h *handlers) predict(r *stdhttp.Request, in domain.PredictInput) (any, error) {
	return h.svc.Predict(r.Context(), in)
}
