package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sir_venger/dropdir/internal/app/webhttp"
	"github.com/sir_venger/dropdir/internal/config"
)

// main поднимает HTTP-сервис общего каталога и обеспечивает корректное
// завершение по сигналу.
func main() {
	var (
		cfgPath    = flag.String("config", "", "optional YAML config file")
		port       = flag.Int("port", config.DefaultPort, "listen port")
		user       = flag.String("user", config.DefaultUsername, "basic auth username")
		password   = flag.String("password", config.DefaultPassword, "basic auth password (default triggers a generated one)")
		dir        = flag.String("dir", config.DefaultUploadDir, "upload directory")
		maxFiles   = flag.Int("max-files", config.DefaultMaxFiles, "max file parts per upload request")
		maxSize    = flag.Int64("max-size", config.DefaultMaxFileSize, "max size per file, bytes")
		extensions = flag.String("extensions", "", "comma-separated extension allow-list (empty = any)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	// Явно переданные флаги перекрывают файл и окружение.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "user":
			cfg.Username = *user
		case "password":
			cfg.Password = *password
		case "dir":
			cfg.UploadDir = *dir
		case "max-files":
			cfg.MaxFiles = *maxFiles
		case "max-size":
			cfg.MaxFileSize = *maxSize
		case "extensions":
			cfg.Extensions = config.SplitList(*extensions)
		}
	})

	generated, err := cfg.Finalize()
	if err != nil {
		log.Fatal(err)
	}

	handler, _, err := webhttp.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Сценарий graceful shutdown при получении SIGTERM/SIGINT.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("shutdown error: %v", err)
		}
	}()

	printBanner(cfg, generated)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("final shutdown error: %v", err)
	}
}

// printBanner выводит оператору итоговую конфигурацию и адреса, по которым
// сервис доступен в локальной сети. Сгенерированный пароль больше нигде
// не сохраняется.
func printBanner(cfg *config.Settings, generatedPassword bool) {
	for _, u := range listenURLs(cfg.Port) {
		log.Printf("listening on %s", u)
	}
	log.Printf("serving directory %s", cfg.UploadDir)
	if generatedPassword {
		log.Printf("credentials: %s / %s (password generated, write it down)", cfg.Username, cfg.Password)
	} else {
		log.Printf("credentials: %s / %s", cfg.Username, cfg.Password)
	}
	ext := "any"
	if len(cfg.Extensions) > 0 {
		ext = strings.Join(cfg.Extensions, ", ")
	}
	log.Printf("limits: %d files per request, %d bytes per file, extensions: %s", cfg.MaxFiles, cfg.MaxFileSize, ext)
}

// listenURLs собирает URL для всех IPv4-адресов локальных интерфейсов.
func listenURLs(port int) []string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return []string{fmt.Sprintf("http://localhost:%d", port)}
	}

	var urls []string
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.To4() == nil {
			continue
		}
		urls = append(urls, fmt.Sprintf("http://%s:%d", ipnet.IP, port))
	}
	if len(urls) == 0 {
		urls = append(urls, fmt.Sprintf("http://localhost:%d", port))
	}

	return urls
}
