package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/beautylog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  name = "simple"
  directory = "./simple_logs"
  extension = ".log"
  console_level = 0 # Debug
  file_level = 1 # Info
  color_mode = "auto"
  console_stack_trace = true
  file_stack_trace = true
  max_size_bytes = 4096
  # Other settings use defaults
`

type worker struct {
	id int
}

func (w *worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	beautylog.Info("worker started, id", w.id)
	time.Sleep(time.Duration(50+w.id*50) * time.Millisecond)
	beautylog.InfoStack(beautylog.CaptureStack(0), "worker finished, id", w.id)
}

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := beautylog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = beautylog.DefaultConfig()
	}

	// --- Initialize Logger ---
	if err := beautylog.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger initialized.")

	// --- Logging ---
	beautylog.Debug("This is a debug message, user_id", 123)
	beautylog.Info("Application starting...")
	beautylog.Warn("Potential issue detected, threshold", 0.95)
	beautylog.Error("An error occurred! code", 500)
	beautylog.Input("> status")
	beautylog.Fatal("Fatal records do not exit the process")

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		w := &worker{id: i}
		go w.run(&wg)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")

	// --- Shutdown Logger ---
	fmt.Println("Shutting down logger...")
	if err := beautylog.Shutdown(2 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check log files in './simple_logs' and the config '%s'.\n", configFile)
}
