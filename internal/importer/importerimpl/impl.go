package importerimpl

import (
	"go.uber.org/fx"

	"storify-import/internal/importer"
	"storify-import/internal/repositories/element"
	"storify-import/internal/repositories/story"
	"storify-import/internal/storify"
	"storify-import/pkg/config"
	"storify-import/pkg/logger"
)

type Opts struct {
	fx.In

	Storify     storify.Client
	StoryRepo   story.Repository
	ElementRepo element.Repository
	Logger      logger.Logger
	Config      *config.Config
}

type ImporterImpl struct {
	Storify     storify.Client
	StoryRepo   story.Repository
	ElementRepo element.Repository
	Logger      logger.Logger
	Config      *config.Config
}

func New(opts Opts) *ImporterImpl {
	return &ImporterImpl{
		Storify:     opts.Storify,
		StoryRepo:   opts.StoryRepo,
		ElementRepo: opts.ElementRepo,
		Logger:      opts.Logger.WithComponent("Importer"),
		Config:      opts.Config,
	}
}

var _ importer.Client = (*ImporterImpl)(nil)
