package cfgx

// Get looks up a configuration item with a fresh Resolver.
// Without options it consults DefaultPriority for the DEFAULT application and section.
//
//	port, err := cfgx.Get("PORT",
//		cfgx.WithApplication("myapp"),
//		cfgx.WithSection("server"),
//		cfgx.WithPriority(cfgx.SourceConfigFile),
//	)
func Get(item string, opts ...Option) (any, error) {
	return NewResolver(opts...).Get(item)
}
