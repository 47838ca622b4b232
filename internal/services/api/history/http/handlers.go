// Package http provides http transport for history
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ekilibria/internal/modkit/httpkit"
	perr "ekilibria/internal/platform/errors"
	"ekilibria/internal/services/api/history/domain"
	svc "ekilibria/internal/services/api/history/service"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/weeks", h.list)
	httpkit.Get(r, "/weeks/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /history/weeks History historyListWeeks
// @Summary List persisted weekly extractions
// @Tags History
// @Produce json
// @Param provider query string false "Workspace provider filter"
// @Param account query string false "Account email filter"
// @Param from query string false "Inclusive fecha_desde lower bound (ISO date)"
// @Param to query string false "Inclusive fecha_desde upper bound (ISO date)"
// @Param limit query int false "Max rows, default 50"
// @Success 200 {array} domain.WeekRecord "ok"
// @Router /history/weeks [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.ListInput{
		Provider: q.Get("provider"),
		Account:  q.Get("account"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.InvalidArgf("limit %q is not an integer", raw)
		}
		in.Limit = n
	}
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /history/weeks/{id} History historyGetWeek
// @Summary Fetch one persisted weekly extraction
// @Tags History
// @Produce json
// @Param id path string true "Week row id"
// @Success 200 {object} domain.WeekRecord "ok"
// @Router /history/weeks/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}
