// fen-server serves FEN parsing and formatting over HTTP.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/server"
)

var (
	addr    = flag.String("addr", "", "Listen address (default: $FEN_SERVER_ADDR or :8080)")
	envFile = flag.String("env", ".env", "Environment file to load before reading settings")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadServerConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *envFile, err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	router := server.NewEngine()
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
