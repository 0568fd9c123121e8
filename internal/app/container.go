// Package app assembles the application services with their infrastructure
// adapters.
package app

import (
	"context"

	"github.com/amantham20/aqs-go/internal/application/bookmark"
	"github.com/amantham20/aqs-go/internal/application/doctor"
	"github.com/amantham20/aqs-go/internal/application/search"
	"github.com/amantham20/aqs-go/internal/infrastructure/config"
	"github.com/amantham20/aqs-go/internal/infrastructure/history"
	"github.com/amantham20/aqs-go/internal/infrastructure/picker"
	"github.com/amantham20/aqs-go/internal/infrastructure/shell"
	"github.com/amantham20/aqs-go/internal/infrastructure/update"
	"github.com/amantham20/aqs-go/internal/pkg/logger"
	"github.com/amantham20/aqs-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
// Terminal-bound adapters (clipboard, prompter) are attached by the CLI
// layer after construction.
type Container struct {
	SearchService   *search.Service
	BookmarkService *bookmark.Service
	DoctorService   *doctor.Service
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	ShellIntegrator ports.ShellIntegrator
	UsageStore      ports.UsageRecorder
	Picker          ports.Picker
	ReleaseChecker  ports.ReleaseChecker
	Prompter        ports.Prompter
	Logger          ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	sources := history.NewFileSourceProvider(log)
	usageStore := history.NewSQLiteStore()
	bookmarks := history.NewAQCFile("")
	fzf := picker.NewFzfPicker(cfg.Picker.Program, cfg.Picker.ExtraArgs)
	runner := shell.NewLocalExecutor(cfg.Execution.Shell, cfg.Execution.Announce)
	installer := shell.NewInstaller(log)
	checker := update.NewChecker()

	searchService := &search.Service{
		ConfigProvider: cfgLoader,
		Sources:        sources,
		Picker:         fzf,
		Executor:       runner,
		Usage:          usageStore,
		Logger:         log,
	}

	bookmarkService := &bookmark.Service{
		ConfigProvider: cfgLoader,
		Sources:        sources,
		Store:          bookmarks,
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		SourceLocator:   history.NewLocator(),
		ShellIntegrator: installer,
		UsageRecorder:   usageStore,
		ReleaseChecker:  checker,
	}

	return &Container{
		SearchService:   searchService,
		BookmarkService: bookmarkService,
		DoctorService:   doctorService,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		ShellIntegrator: installer,
		UsageStore:      usageStore,
		Picker:          fzf,
		ReleaseChecker:  checker,
		Logger:          log,
	}, nil
}
