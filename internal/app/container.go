// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/infra/config"
	"github.com/runoshun/relnotes/internal/infra/filestore"
	"github.com/runoshun/relnotes/internal/infra/git"
	"github.com/runoshun/relnotes/internal/infra/inputs"
	"github.com/runoshun/relnotes/internal/infra/logging"
	"github.com/runoshun/relnotes/internal/infra/tracker"
	"github.com/runoshun/relnotes/internal/infra/xmldoc"
	"github.com/runoshun/relnotes/internal/usecase"
)

// Options controls how the container is built.
type Options struct {
	LogOutput       io.Writer // Defaults to os.Stderr
	ConfigPath      string    // Explicit config file (--config)
	GlobalConfigDir string    // Overrides $XDG_CONFIG_HOME/relnotes
	LogLevel        string    // Overrides [log] level when set
	WorkDir         string    // Directory used to detect the git repository
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Inputs       domain.InputReader
	Fetcher      domain.NoteFetcher
	Store        domain.PamphletStore
	Git          domain.Git // nil outside a repository
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
}

// New loads the configuration and wires every adapter.
func New(opts Options) (*Container, error) {
	var configLoader *config.Loader
	if opts.GlobalConfigDir != "" {
		configLoader = config.NewLoaderWithGlobalDir(opts.GlobalConfigDir, opts.ConfigPath)
	} else {
		configLoader = config.NewLoader(opts.ConfigPath)
	}
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	// Create logger
	level := appConfig.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := logging.New(out, logging.Options{Level: logging.ParseLevel(level)})

	httpClient := &http.Client{
		Timeout: time.Duration(appConfig.HTTP.TimeoutSeconds) * time.Second,
	}

	c := &Container{
		Inputs:       inputs.NewReader(xmldoc.NewLoader(), appConfig.Tracker.NoteFilename),
		Fetcher:      tracker.NewNoteFetcher(appConfig.Tracker, appConfig.HTTP.UserAgent, httpClient, logger),
		Store:        filestore.New(appConfig.Pamphlet.Indent),
		ConfigLoader: configLoader,
		Clock:        domain.RealClock{},
		Logger:       logger,
		AppConfig:    appConfig,
	}

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		c.Git = gitClient
	case errors.Is(err, domain.ErrNotGitRepo):
		logger.Debug("not inside a git repository", "dir", dir)
	default:
		logger.Warn("failed to open git repository", "dir", dir, "error", err)
	}

	return c, nil
}

// UseCase factory methods

// GenerateReleaseNotesUseCase returns a new GenerateReleaseNotes use case.
func (c *Container) GenerateReleaseNotesUseCase() *usecase.GenerateReleaseNotes {
	return usecase.NewGenerateReleaseNotes(c.Inputs, c.Fetcher, c.Store, c.AppConfig, c.Logger)
}

// ReportMissingNotesUseCase returns a new ReportMissingNotes use case.
func (c *Container) ReportMissingNotesUseCase() *usecase.ReportMissingNotes {
	return usecase.NewReportMissingNotes(c.Store, c.Clock, c.Logger)
}

// InitSummaryUseCase returns a new InitSummary use case.
func (c *Container) InitSummaryUseCase() *usecase.InitSummary {
	return usecase.NewInitSummary(c.Git, c.Store, xmldoc.NewSummaryTemplate, c.Logger)
}

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Inputs)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
