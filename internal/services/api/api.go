// Package api provides the HTTP API for the application
package api

import (
	"ekilibria/internal/platform/config"
	"ekilibria/internal/platform/logger"
	phttp "ekilibria/internal/platform/net/http"
	"ekilibria/internal/platform/store"

	"ekilibria/internal/modkit"
	"ekilibria/internal/modkit/httpkit"
	"ekilibria/internal/modkit/module"
	"ekilibria/internal/modkit/swaggerkit"

	historydom "ekilibria/internal/services/api/history/domain"
	historymod "ekilibria/internal/services/api/history/module"
	metamod "ekilibria/internal/services/api/meta/module"
	wellbeingmod "ekilibria/internal/services/api/wellbeing/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// history first so its recorder port can feed the wellbeing module
	history := historymod.New(deps)
	recorder := module.MustPortsOf[historydom.RecorderPort](history)

	wellbeing := wellbeingmod.New(
		deps,
		modkit.WithPorts(wellbeingmod.Ports{
			Recorder: recorder,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		history,
		wellbeing,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
