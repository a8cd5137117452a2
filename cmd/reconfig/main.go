package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/beautylog"
)

// Simulate rapid reconfiguration while another goroutine keeps logging
func main() {
	var attempted, failed atomic.Int64

	logger, err := beautylog.NewBuilder().
		Name("reconfig").
		Directory("./reconfig_logs").
		ConsoleLevelString("error").
		Build()
	if err != nil {
		fmt.Printf("Initial build error: %v\n", err)
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if err := logger.Info("Test log", i); err != nil {
				failed.Add(1)
			}
			attempted.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Alternate modes and buffer sizes to force processor restarts
	for i := 0; i < 10; i++ {
		overrides := []string{
			fmt.Sprintf("async=%t", i%2 == 0),
			fmt.Sprintf("buffer_size=%d", 100*(i+1)),
			fmt.Sprintf("period_ms=%d", 10*i),
		}
		if err := logger.ApplyConfigString(overrides...); err != nil {
			fmt.Printf("Reconfigure error: %v\n", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)
	close(stop)
	<-done

	fmt.Printf("Total logs attempted: %d, failed: %d\n", attempted.Load(), failed.Load())

	if err := logger.Shutdown(time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
	}
}
