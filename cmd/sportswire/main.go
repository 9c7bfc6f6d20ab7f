package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sportswire/internal/app"
	"sportswire/internal/config"
	"sportswire/internal/fetch"
	"sportswire/internal/logger"
	"sportswire/internal/metrics"
)

var (
	configPath  string
	outDir      string
	demoMode    bool
	perCategory int
	capOverride int
	runSalt     string
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "sportswire",
	Short: "Enriched JP sports RSS generator",
	Long: `Collects sports-news RSS sources, dedups and filters their entries,
rewrites titles and descriptions with a betting call-to-action, and
re-emits one combined feed plus one feed per category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(debugMode)

		if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
			go startMonitoringServer()
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}

		opts := app.Options{
			OutDir:      outDir,
			Demo:        demoMode,
			PerCategory: perCategory,
			CapOverride: capOverride,
			Salt:        runSalt,
		}
		client := fetch.NewClient(30 * time.Second)
		if err := app.Run(cfg, client, opts); err != nil {
			metrics.Global.SetError(err.Error())
			return fmt.Errorf("output write: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to the channel spec YAML")
	rootCmd.Flags().StringVar(&outDir, "out", "dist", "Output directory for the generated feeds")
	rootCmd.Flags().BoolVar(&demoMode, "demo", false, "Generate demo items (no network fetch) for quick testing")
	rootCmd.Flags().IntVar(&perCategory, "per-category", 3, "Demo items per category when --demo is used")
	rootCmd.Flags().IntVar(&capOverride, "limit", 0, "Override the per-category item cap")
	rootCmd.Flags().StringVar(&runSalt, "salt", "", "Explicit run salt for demo mode")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func startMonitoringServer() {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	log.Printf("Starting monitoring server on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("Monitoring server error: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
