package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/balance-game/cliparse"
	"github.com/danielhkuo/balance-game/logging"
	"github.com/danielhkuo/balance-game/middleware"
	"github.com/danielhkuo/balance-game/questions"
	"github.com/danielhkuo/balance-game/router"
	"github.com/danielhkuo/balance-game/stats"
	"github.com/danielhkuo/balance-game/tui"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logOut := logging.Setup(cfg)
	defer logOut.Close()

	// os.Exit skips deferred calls, so flush the log file first
	fatal := func() {
		logOut.Close()
		os.Exit(1)
	}

	// Load the question table
	qs, err := questions.Load(cfg.QuestionsPath)
	if err != nil {
		slog.Error("question table rejected", "error", err, "path", cfg.QuestionsPath)
		fatal()
	}
	slog.Info("Questions loaded", "count", len(qs))

	store := stats.NewStore(len(qs))

	if cfg.Mode == cliparse.ModeKiosk {
		if err := tui.Run(store, qs); err != nil {
			slog.Error("kiosk exited", "error", err)
			fatal()
		}
		return
	}

	// Create router
	mux := router.NewRouter(store, qs)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
