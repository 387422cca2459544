package internal

import (
	"fmt"
	"log/slog"
	"strings"

	"skidmo-client/internal/adapters/forms"
	logger_adapter "skidmo-client/internal/adapters/logger"
	"skidmo-client/internal/adapters/marketapi"
	"skidmo-client/internal/adapters/session"
	"skidmo-client/internal/configs"
	"skidmo-client/internal/core/port"
	"skidmo-client/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App is the composition root: it builds the logger stack, the session store,
// the API client and every use case, and owns whatever needs closing on exit.
type App struct {
	Config *configs.AppConfig
	Logger port.LoggerPort

	Session port.SessionStorePort
	Client  *marketapi.Client

	BrowseFeed     *usecase.BrowseListings
	Search         *usecase.SearchListings
	LiveCount      *usecase.LiveCount
	Publish        *usecase.PublishListing
	Login          *usecase.Login
	MyProps        *usecase.MyProperties
	GetListing     *usecase.GetListing
	Reservations   *usecase.ListReservations
	NewReservation *usecase.MakeReservation
	Threads        *usecase.ListThreads
	SendMessage    *usecase.SendMessage

	fluentClient *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    ParseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.JSON,
		UseColor: !appConfig.StdoutLogger.JSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost: appConfig.FluentBit.Host,
			FluentPort: appConfig.FluentBit.Port,
			TagPrefix:  appConfig.FluentBit.Tag,
			Async:      true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, ParseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	logger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, err
	}

	sessionStore, err := session.NewFileStore(appConfig.Session.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	decoder := session.NewClaimsDecoder()

	client := marketapi.NewClient(appConfig.ApiClient.BaseURL, sessionStore, decoder)
	validator := forms.NewDraftValidator()

	app := &App{
		Config:  appConfig,
		Logger:  logger,
		Session: sessionStore,
		Client:  client,

		BrowseFeed:     usecase.NewBrowseListings(client, logger),
		Search:         usecase.NewSearchListings(client, logger),
		LiveCount:      usecase.NewLiveCount(client, logger, appConfig.CountDebounce),
		Publish:        usecase.NewPublishListing(validator, client, logger),
		Login:          usecase.NewLogin(client, decoder, sessionStore, logger),
		MyProps:        usecase.NewMyProperties(client, logger),
		GetListing:     usecase.NewGetListing(client, logger),
		Reservations:   usecase.NewListReservations(client),
		NewReservation: usecase.NewMakeReservation(client, logger),
		Threads:        usecase.NewListThreads(client),
		SendMessage:    usecase.NewSendMessage(client),

		fluentClient: fluentClient,
	}
	return app, nil
}

// Close flushes and releases everything the app owns.
func (a *App) Close() {
	if a.fluentClient != nil {
		a.fluentClient.Close()
	}
}

// ParseLogLevel maps a config string to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
