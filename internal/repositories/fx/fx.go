package fx

import (
	"go.uber.org/fx"

	"storify-import/internal/repositories/element"
	"storify-import/internal/repositories/story"
)

var Module = fx.Options(
	story.Module,
	element.Module,
)
