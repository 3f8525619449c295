package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"yt2blog/internal/article"
	"yt2blog/internal/config"
	"yt2blog/internal/pipeline"
	"yt2blog/internal/transcribe"
	"yt2blog/internal/youtube"
)

var outputFile string

var rootCmd = &cobra.Command{
	Use:   "blogctl <youtube-url>",
	Short: "Generate a blog article from a YouTube video",
	Long:  `Runs the same pipeline as the HTTP service once: fetch the title, download and transcribe the audio, and write a blog article from the transcript.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}

		cfg := config.Load()

		downloader := youtube.NewDownloader(cfg.YtdlpPath, cfg.MediaRoot)
		transcriber := transcribe.NewClient(cfg.TranscriptionAPIURL, cfg.TranscriptionAPIKey, cfg.Language)
		synthesizer := article.NewSynthesizer(cfg.OpenAIAPIKey, cfg.ChatModel)
		pipe := pipeline.New(downloader, downloader, transcriber, synthesizer)

		result, err := pipe.Generate(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		output := fmt.Sprintf("# %s\n\n%s\n", result.Title, result.Content)
		if outputFile != "" {
			return os.WriteFile(outputFile, []byte(output), 0644)
		}
		fmt.Print(output)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the article to a file instead of stdout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
