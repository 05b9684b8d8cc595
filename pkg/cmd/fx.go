package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(dialects, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(plan, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(renameCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(script, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
