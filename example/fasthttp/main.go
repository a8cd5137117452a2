// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/beautylog"
	"github.com/lixenwraith/beautylog/compat"
)

func main() {
	logger, err := beautylog.NewBuilder().
		Name("fasthttp").
		Directory("/var/log/fasthttp").
		FileLevelString("debug").
		Async(true).
		BufferSize(2048).
		PeriodMs(250).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(beautylog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		_ = logger.Fatal("server stopped:", err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) (int64, bool) {
	if strings.Contains(msg, "connection cannot be served") {
		return beautylog.LevelWarn, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return beautylog.LevelError, true
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
