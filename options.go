package blazejob

// Option configures a PartitionKeyProvider with optional dependencies.
type Option func(*providerOptions)

// providerOptions holds optional provider configuration.
type providerOptions struct {
	logger              Logger
	triggerStateMapper  StateValueMapper
	instanceStateMapper StateValueMapper
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	provider, err := blazejob.NewPartitionKeyProvider(cat, &cfg, blazejob.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *providerOptions) {
		o.logger = logger
	}
}

// WithTriggerStateValueMapper sets the mapping from the abstract instance
// state to the value stored in the trigger state attribute.
//
// The default mapper is the identity: the abstract state is handed to the
// storage layer unchanged.
//
// Parameters:
//   - mapper: Mapping function applied to every trigger partition key
//
// Example:
//
//	// Triggers persist their state as lowercase strings.
//	mapper := func(s blazejob.InstanceState) any { return strings.ToLower(s.String()) }
//	provider, err := blazejob.NewPartitionKeyProvider(cat, &cfg,
//	    blazejob.WithTriggerStateValueMapper(mapper))
func WithTriggerStateValueMapper(mapper StateValueMapper) Option {
	return func(o *providerOptions) {
		o.triggerStateMapper = mapper
	}
}

// WithInstanceStateValueMapper sets the mapping from the abstract instance
// state to the value stored in the job instance state attribute.
//
// The default mapper is the identity.
func WithInstanceStateValueMapper(mapper StateValueMapper) Option {
	return func(o *providerOptions) {
		o.instanceStateMapper = mapper
	}
}
