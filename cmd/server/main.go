package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"yt2blog/internal/api"
	"yt2blog/internal/article"
	"yt2blog/internal/config"
	"yt2blog/internal/pipeline"
	"yt2blog/internal/transcribe"
	"yt2blog/internal/youtube"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()
	log.Printf("OpenAI key: %s, transcription key: %s",
		config.MaskKey(cfg.OpenAIAPIKey), config.MaskKey(cfg.TranscriptionAPIKey))

	downloader := youtube.NewDownloader(cfg.YtdlpPath, cfg.MediaRoot)
	transcriber := transcribe.NewClient(cfg.TranscriptionAPIURL, cfg.TranscriptionAPIKey, cfg.Language)
	synthesizer := article.NewSynthesizer(cfg.OpenAIAPIKey, cfg.ChatModel)
	pipe := pipeline.New(downloader, downloader, transcriber, synthesizer)

	router := api.NewRouter(pipe, cfg.ServiceAPIKey)

	log.Printf("Starting HTTP server on %s...", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
