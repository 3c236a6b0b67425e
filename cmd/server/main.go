package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatrelay-backend/internal/config"
	"chatrelay-backend/internal/handlers"
	"chatrelay-backend/internal/ollama"
	"chatrelay-backend/internal/router"
)

func main() {
	log.Println("🚀 Starting Chat Relay Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.OllamaDebug {
		log.Println("✓ Verbose Ollama diagnostics enabled")
	}

	// ──── Step 2: Initialize Ollama Client ────
	client := ollama.NewClient(nil)
	debug := handlers.NewDebugLog(cfg.OllamaDebug)
	log.Printf("✓ Ollama client initialized (default base: %s)", ollama.ResolveBaseURL("", cfg.OllamaBaseURL))

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(client, cfg.OllamaBaseURL, debug)
	modelsHandler := handlers.NewModelsHandler(client, cfg.OllamaBaseURL, debug)

	// ──── Step 3: Start HTTP Server ────
	r := router.New(
		chatHandler,
		modelsHandler,
		cfg.FrontendURL,
		cfg.ChatRateLimit,
		cfg.ChatRateWindow,
	)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Must outlive the 45s relay deadline or slow inference gets cut off
		// before the handler can report a timeout.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Chat Relay Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
