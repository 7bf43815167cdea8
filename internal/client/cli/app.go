package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"github.com/jobease/jobease-cli/internal/client/api"
	"github.com/jobease/jobease-cli/internal/client/config"
	"github.com/jobease/jobease-cli/internal/client/models"
	"github.com/jobease/jobease-cli/internal/client/services"
	"github.com/jobease/jobease-cli/internal/client/session"
	"github.com/jobease/jobease-cli/internal/client/storage"
	"github.com/jobease/jobease-cli/internal/logging"
)

// App wires the whole client together: persisted session store, REST
// client, session state machine and the per-route views driven by the REPL.
type App struct {
	config *config.Config
	store  *storage.Store
	sess   *session.Manager

	auth          *services.AuthService
	notifiers     *services.NotifierService
	notifications *services.NotificationService
	userInfo      *services.UserInfoService
	account       *services.AccountService

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store, prunes unknown keys, and builds the service
// graph.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		return nil, err
	}
	store := storage.NewStore(db)

	// Drop legacy keys before anything reads the store.
	if err := store.Prune(ctx); err != nil {
		return nil, err
	}

	local := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	opts := []api.Option{api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout})}
	if !c.APIEnabled {
		opts = append(opts, api.WithDisabledBackend())
	}
	client := api.New(c.APIBaseURL, store, local, opts...)

	authSvc := services.NewAuthService(client)
	notifierSvc := services.NewNotifierService(client)

	sess := session.NewManager(store, authSvc, notifierSvc, local)
	client.SetAuthRejectHandler(sess.HandleAuthReject)

	telemetry := services.NewTelemetryService(client, "jobease-cli", c.Environment, func() *models.User {
		return sess.User()
	})
	log := logging.NewRemoteLogger(local, telemetry.Send)

	return &App{
		config:        c,
		store:         store,
		sess:          sess,
		auth:          authSvc,
		notifiers:     notifierSvc,
		notifications: services.NewNotificationService(client),
		userInfo:      services.NewUserInfoService(client),
		account:       services.NewAccountService(client),
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run initializes the session from the store and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.sess.Initialize(ctx); err != nil {
		a.log.Error(ctx, "session initialization failed", "error", err.Error())
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sess.Snapshot().IsAuthenticated()
}
