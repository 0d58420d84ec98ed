package errors

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PancyStudios/SentinelBotGo/pkg/logger"
	json "github.com/goccy/go-json"
)

// Watchdog counts recovered panics and reported failures. If the process
// accumulates an unusual burst of errors it reports to the webhook and
// shuts down instead of flapping.
type Watchdog struct {
	errorCount    int32
	webhookURL    string
	stopChan      chan struct{}
	shutdownFunc  func()
	maxErrors     int32
	resetInterval time.Duration
	checkInterval time.Duration
}

// ReportOptions contains options for reporting an error to the webhook.
type ReportOptions struct {
	Error   string
	Message string
}

var (
	watchdog *Watchdog
	once     sync.Once
)

// Init initializes the global watchdog.
func Init(webhookURL string, shutdownFunc func()) *Watchdog {
	once.Do(func() {
		watchdog = NewWatchdog(webhookURL, shutdownFunc)
	})
	return watchdog
}

// Get returns the global watchdog instance.
func Get() *Watchdog {
	return watchdog
}

// NewWatchdog creates a new Watchdog instance and starts its monitors.
func NewWatchdog(webhookURL string, shutdownFunc func()) *Watchdog {
	w := &Watchdog{
		webhookURL:    webhookURL,
		stopChan:      make(chan struct{}),
		shutdownFunc:  shutdownFunc,
		maxErrors:     15,
		resetInterval: 5 * time.Second,
		checkInterval: 1 * time.Second,
	}

	w.start()
	return w
}

func (w *Watchdog) start() {
	// Reset the counter periodically so only bursts trip the shutdown.
	go func() {
		ticker := time.NewTicker(w.resetInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				atomic.StoreInt32(&w.errorCount, 0)
			case <-w.stopChan:
				return
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(w.checkInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if atomic.LoadInt32(&w.errorCount) > w.maxErrors {
					logger.Warn("Se detectó un número demasiado alto de errores", "Watchdog")
					logger.Warn("Apagando...", "Watchdog")

					w.Report(ReportOptions{
						Error:   "Critical Error",
						Message: "Número inusual de errores. Apagando...",
					})

					if w.shutdownFunc != nil {
						w.shutdownFunc()
					}
					os.Exit(1)
				}
			case <-w.stopChan:
				return
			}
		}
	}()
}

// Stop stops the watchdog goroutines.
func (w *Watchdog) Stop() {
	close(w.stopChan)
}

// Increment bumps the error counter.
func (w *Watchdog) Increment() {
	count := atomic.AddInt32(&w.errorCount, 1)
	logger.Error(fmt.Sprintf("Error count: %d", count), "Watchdog")
}

// HandlePanic handles a recovered panic.
func (w *Watchdog) HandlePanic(recovered interface{}) {
	w.Increment()
	logger.Error(fmt.Sprintf("Panic recuperado: %v", recovered), "Watchdog")
}

// Report sends an error report to the configured webhook.
func (w *Watchdog) Report(data ReportOptions) {
	if w.webhookURL == "" {
		return
	}

	embed := map[string]interface{}{
		"author": map[string]string{
			"name": fmt.Sprintf("Error %s", data.Error),
		},
		"description": data.Message,
		"color":       0xFF0000,
		"footer": map[string]string{
			"text": "SentinelBot Go",
		},
		"timestamp": time.Now().Format(time.RFC3339),
	}

	payload := map[string]interface{}{
		"embeds": []interface{}{embed},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to marshal error report: %v", err), "Watchdog")
		return
	}

	req, err := http.NewRequest("POST", w.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to create webhook request: %v", err), "Watchdog")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to send error report: %v", err), "Watchdog")
		return
	}
	defer resp.Body.Close()
}

// RecoverMiddleware returns a recovery function for use in deferred calls.
func RecoverMiddleware() func() {
	return func() {
		if r := recover(); r != nil {
			if watchdog != nil {
				watchdog.HandlePanic(r)
			} else {
				logger.Error(fmt.Sprintf("Panic recovered (no watchdog): %v", r), "Watchdog")
			}
		}
	}
}
