package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(diff, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(generate, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(name, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(rehash, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(trigger, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(watch, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
