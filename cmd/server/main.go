package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	port := flag.Int("port", 7481, "TCP port to listen on")
	jwtSecret := flag.String("jwtSecret", "", "Shared secret for HS256 JWT auth (auth disabled if empty)")
	issuer := flag.String("issuer", "", "Expected JWT issuer claim")
	audience := flag.String("audience", "", "Expected JWT audience claim")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("minisql parse server v%s\n", Version)
		return
	}

	setupLogging(logging.INFO)

	var authConfig *AuthConfig
	if *jwtSecret != "" {
		authConfig = &AuthConfig{
			Enabled:   true,
			JWTSecret: *jwtSecret,
			Issuer:    *issuer,
			Audience:  *audience,
		}
		log.Info("JWT authentication enabled")
	}

	server := NewServer(authConfig)
	addr := fmt.Sprintf(":%d", *port)

	if err := server.Start(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	fmt.Println()
	fmt.Printf("minisql parse server v%s\n", Version)
	fmt.Printf("Listening on port %d\n", *port)
	fmt.Println("Send SQL statements (one per line), 'quit' to disconnect")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Notice("Shutting down...")
	server.Stop()
	log.Notice("Server stopped")
}
