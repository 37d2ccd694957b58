package blazejob

import "fmt"

// AttributeBindings names the storage attributes used to identify, schedule
// and track records of one category.
//
// The names are handed through to partition keys unchanged; whether they
// actually exist on the underlying storage schema is a downstream concern.
type AttributeBindings struct {
	// IDAttribute is the identifying attribute name.
	// Default: "id"
	IDAttribute string `yaml:"idAttribute"`

	// PartitionKeyAttribute is the attribute used for partition bucketing.
	// Default: the id attribute.
	PartitionKeyAttribute string `yaml:"partitionKeyAttribute"`

	// ScheduleAttribute is the schedule time attribute name.
	// Default: "scheduleTime"
	ScheduleAttribute string `yaml:"scheduleAttribute"`

	// LastExecutionAttribute is the last execution time attribute name.
	// Default: "lastExecutionTime"
	LastExecutionAttribute string `yaml:"lastExecutionAttribute"`

	// StateAttribute is the state attribute name.
	// Default: "state"
	StateAttribute string `yaml:"stateAttribute"`
}

// Config is the configuration for the partition key provider.
//
// Trigger and instance keys are bound independently so that the two record
// categories can live in differently shaped storage regions.
type Config struct {
	// Trigger binds attribute names for job trigger partition keys.
	Trigger AttributeBindings `yaml:"trigger"`

	// Instance binds attribute names for job instance partition keys.
	Instance AttributeBindings `yaml:"instance"`
}

// DefaultConfig returns a Config with all default attribute bindings.
func DefaultConfig() Config {
	cfg := Config{}
	ApplyDefaults(&cfg)

	return cfg
}

// ApplyDefaults fills unset fields with default values.
//
// Set fields are preserved, so a partially populated Config (e.g. from
// yaml.Unmarshal) can be completed in place. The partition key attribute
// defaults to whatever the id attribute resolves to, including a custom
// one.
func ApplyDefaults(cfg *Config) {
	applyBindingDefaults(&cfg.Trigger)
	applyBindingDefaults(&cfg.Instance)
}

func applyBindingDefaults(b *AttributeBindings) {
	if b.IDAttribute == "" {
		b.IDAttribute = "id"
	}
	if b.PartitionKeyAttribute == "" {
		b.PartitionKeyAttribute = b.IDAttribute
	}
	if b.ScheduleAttribute == "" {
		b.ScheduleAttribute = "scheduleTime"
	}
	if b.LastExecutionAttribute == "" {
		b.LastExecutionAttribute = "lastExecutionTime"
	}
	if b.StateAttribute == "" {
		b.StateAttribute = "state"
	}
}

// Validate checks that every attribute binding is populated.
//
// Returns:
//   - error: ErrInvalidConfig-wrapped error naming the offending field, nil when valid
func (c *Config) Validate() error {
	if err := c.Trigger.validate("trigger"); err != nil {
		return err
	}

	return c.Instance.validate("instance")
}

func (b *AttributeBindings) validate(category string) error {
	fields := []struct {
		name  string
		value string
	}{
		{"id attribute", b.IDAttribute},
		{"partition key attribute", b.PartitionKeyAttribute},
		{"schedule attribute", b.ScheduleAttribute},
		{"last execution attribute", b.LastExecutionAttribute},
		{"state attribute", b.StateAttribute},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s %s is empty", ErrInvalidConfig, category, f.name)
		}
	}

	return nil
}
