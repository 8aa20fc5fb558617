package router

import (
	"context"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/internal/container"
	"github.com/kmulatu/ezana-academy/internal/domain/storage"
	navinfra "github.com/kmulatu/ezana-academy/internal/infrastructure/nav"
	storeinfra "github.com/kmulatu/ezana-academy/internal/infrastructure/storage"
	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
	"github.com/kmulatu/ezana-academy/internal/router/modules"
)

// buildStores selects the Store implementation per the configured mode. The
// session record always lives in the local store; only the catalog, user
// and settings records follow the mode switch.
func buildStores() (store storage.Store, sessions storage.Store) {
	cfg := container.GetConfig()
	local := storeinfra.NewPostgresStore(
		container.GetPGPool(),
		container.GetLogger(),
		cfg.StoreReadDelay,
		cfg.StoreSessionDelay,
	)
	if cfg.RemoteMode() {
		return storeinfra.NewRemoteStore(cfg.RemoteAPIURL, container.GetLogger()), local
	}
	return local, local
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	store, sessions := buildStores()
	data := app.NewDataService(store, sessions, logger)
	container.SetDataService(data)

	var catalog app.Catalog
	if cfg.YouTubeAPIKey != "" {
		yt, err := app.NewYouTubeCatalog(context.Background(), cfg.YouTubeAPIKey)
		if err != nil {
			logger.WithError(err).Warn("youtube catalog unavailable, lessons will use substitute sets")
		} else {
			catalog = yt
		}
	}
	lessons := app.NewLessonResolver(catalog, container.GetRedis(), cfg.LessonCacheTTL, logger)
	container.SetLessonResolver(lessons)

	search := app.NewCourseSearch(container.GetES(), cfg.ESCoursesIndex, data, logger)
	container.SetCourseSearch(search)

	assistant := app.NewAssistant(data, cfg)
	container.SetAssistant(assistant)

	auth := app.NewAuthService(
		data,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRabbitPub(),
		cfg,
		logger,
	)
	container.SetAuthService(auth)

	nav := app.NewNavigator(
		data,
		navinfra.NewRedisFragment(container.GetRedis(), logger),
		&navinfra.LogScroller{Logger: logger},
		logger,
	)
	nav.Start(context.Background())
	container.SetNavigator(nav)

	authHandler := handlers.NewAuthHandler(auth, data, nav, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(data, logger)
	courseHandler := handlers.NewCourseHandler(data, lessons, search, logger)
	settingsHandler := handlers.NewSettingsHandler(data, logger)
	navHandler := handlers.NewNavHandler(nav, data, logger)
	assistantHandler := handlers.NewAssistantHandler(assistant)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewCourseModule(courseHandler, container.GetJWT()))
	r.Add(modules.NewSettingsModule(settingsHandler, container.GetJWT()))
	r.Add(modules.NewNavModule(navHandler))
	r.Add(modules.NewAssistantModule(assistantHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
