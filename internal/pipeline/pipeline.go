package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Stage identifies one step of the generation pipeline.
type Stage string

const (
	StageTitle         Stage = "title"
	StageDownload      Stage = "download"
	StageTranscription Stage = "transcription"
	StageSynthesis     Stage = "synthesis"
)

// StageError reports which pipeline stage failed. The HTTP layer maps the
// stage to a response message; the wrapped error keeps the cause for logs.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// TitleFetcher resolves a video's display title without downloading media.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, link string) (string, error)
}

// AudioDownloader produces a local audio file for the given video link.
type AudioDownloader interface {
	DownloadAudio(ctx context.Context, link string) (string, error)
}

// Transcriber converts a local audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// Synthesizer turns a transcript into formatted article text.
type Synthesizer interface {
	Synthesize(ctx context.Context, transcript string) (string, error)
}

// Result is the successful output of a pipeline run.
type Result struct {
	Title   string
	Content string
}

// Pipeline sequences title fetch, audio download, transcription and article
// synthesis. Strictly linear: each stage must complete before the next
// starts, and the first failure short-circuits the run.
type Pipeline struct {
	titles      TitleFetcher
	downloader  AudioDownloader
	transcriber Transcriber
	synthesizer Synthesizer
}

// New creates a Pipeline from its four stage collaborators.
func New(titles TitleFetcher, downloader AudioDownloader, transcriber Transcriber, synthesizer Synthesizer) *Pipeline {
	return &Pipeline{
		titles:      titles,
		downloader:  downloader,
		transcriber: transcriber,
		synthesizer: synthesizer,
	}
}

// Generate runs the full pipeline for one video link. Nothing is cached;
// calling Generate twice with the same link repeats every stage. The
// downloaded audio file is removed on every exit path once it exists.
func (p *Pipeline) Generate(ctx context.Context, link string) (*Result, error) {
	if link == "" {
		return nil, &StageError{Stage: StageTitle, Err: fmt.Errorf("empty video link")}
	}

	title, err := p.titles.FetchTitle(ctx, link)
	if err != nil {
		return nil, &StageError{Stage: StageTitle, Err: err}
	}
	log.Printf("Resolved title: %q", title)

	audioPath, err := p.downloader.DownloadAudio(ctx, link)
	if err != nil {
		return nil, &StageError{Stage: StageDownload, Err: err}
	}
	defer func() {
		if err := os.Remove(audioPath); err != nil {
			log.Printf("Failed to remove audio file %s: %v", audioPath, err)
		}
	}()
	log.Printf("Downloaded audio to: %s", audioPath)

	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, &StageError{Stage: StageTranscription, Err: err}
	}
	log.Printf("Transcription completed (%d chars)", len(transcript))

	content, err := p.synthesizer.Synthesize(ctx, transcript)
	if err != nil {
		return nil, &StageError{Stage: StageSynthesis, Err: err}
	}
	log.Printf("Article generated (%d chars)", len(content))

	return &Result{Title: title, Content: content}, nil
}
