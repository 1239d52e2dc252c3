package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mightyai/mighty-gateway/config"
	"github.com/mightyai/mighty-gateway/pkg/mighty"
	"github.com/mightyai/mighty-gateway/pkg/models"
	"github.com/mightyai/mighty-gateway/pkg/server"
)

const (
	ErrInferenceClientNotSet = "mighty.client must be set"
	ErrServerURLNotSet       = "mighty.server_url must be set for the rest client"
	InferenceClientTypeREST  = "rest"
	InferenceClientTypeLocal = "local"

	shutdownTimeout = 10 * time.Second
)

// run is the entrypoint for the gateway server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring mighty-gateway: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting mighty-gateway server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)
	setupSignalHandler(srv)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// initializes the inference client
func NewAppState(cfg *config.Config) *models.AppState {
	appState := &models.AppState{
		Config: cfg,
	}

	initializeInferenceClient(appState)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		cfgDump, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(cfgDump))
		os.Exit(0)
	}
}

// initializeInferenceClient initializes the backend client based on the
// config file / ENV. The gateway is backend-agnostic: handlers only ever see
// the models.InferenceClient interface.
func initializeInferenceClient(appState *models.AppState) {
	switch appState.Config.Mighty.Client {
	case "":
		log.Fatal(ErrInferenceClientNotSet)
	case InferenceClientTypeREST:
		if appState.Config.Mighty.ServerURL == "" {
			log.Fatal(ErrServerURLNotSet)
		}
		appState.InferenceClient = mighty.NewRESTClient(appState.Config)
	case InferenceClientTypeLocal:
		appState.InferenceClient = mighty.NewLocalClient()
	default:
		log.Fatal(
			fmt.Sprintf(
				"mighty.client (%s) is not supported",
				appState.Config.Mighty.Client,
			),
		)
	}

	log.Info("Using inference client: ", appState.Config.Mighty.Client)
}

// setupSignalHandler sets up a signal handler to drain in-flight requests on
// termination
func setupSignalHandler(srv *http.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
		os.Exit(0)
	}()
}
