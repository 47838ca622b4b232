// Package module wires wellbeing into the API using modkit
package module

import (
	"net/http"

	modkit "ekilibria/internal/modkit"
	"ekilibria/internal/modkit/httpkit"
	str "ekilibria/internal/platform/strings"

	"ekilibria/internal/adapters/model"
	"ekilibria/internal/adapters/workspace"
	"ekilibria/internal/adapters/workspace/google"
	"ekilibria/internal/adapters/workspace/msgraph"
	welldom "ekilibria/internal/services/api/wellbeing/domain"
	wellhttp "ekilibria/internal/services/api/wellbeing/http"
	wellsvc "ekilibria/internal/services/api/wellbeing/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc wellsvc.Service
}

// New constructs a wellbeing module with the provided dependencies and options
// inject Ports{Recorder: ...} to persist extractions through the history module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("wellbeing"),
		modkit.WithPrefix("/wellbeing"),
	}, opts...)...)

	cfg := wellsvc.Config{
		Sources: map[string]workspace.ActivityDataSource{
			workspace.ProviderGoogle:    google.New(),
			workspace.ProviderMicrosoft: msgraph.New(),
		},
	}
	if p, ok := b.Ports.(Ports); ok {
		cfg.Recorder = p.Recorder
	}
	if base := deps.Cfg.MayString("MODEL_URL", ""); base != "" {
		cfg.Predictor = model.New(base)
	}
	svc := wellsvc.New(cfg)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptWellbeingPort{svc: svc}

	// tokens are opaque provider OAuth tokens, presence is all we check here
	authPort := httpkit.NewPortFunc(func(string) (string, string, error) {
		return "", "", nil
	})

	external := b.Register
	m.register = func(r httpkit.Router) {
		wellhttp.Register(r, authPort, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

var _ welldom.ServicePort = (*wellsvc.Svc)(nil)
