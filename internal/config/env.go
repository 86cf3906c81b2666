package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix starts every environment variable the config reads.
const EnvPrefix = "FLUXLIST_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from environment variables. Empty values are
// treated as set.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	text := map[string]*string{
		EnvPrefix + "ITEM_NAME":    &c.Item.DefaultName,
		EnvPrefix + "ID_STRATEGY":  &c.Item.IDStrategy,
		EnvPrefix + "TITLE":        &c.UI.Title,
		EnvPrefix + "BUTTON_LABEL": &c.UI.ButtonLabel,
		EnvPrefix + "LOG_LEVEL":    &c.Logging.Level,
		EnvPrefix + "LOG_FILE":     &c.Logging.File,
	}
	for env, dst := range text {
		if v, ok := lookup(env); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		EnvPrefix + "METRICS": &c.Dispatcher.Metrics,
		EnvPrefix + "TRACE":   &c.Dispatcher.Trace,
	}
	for env, dst := range bools {
		v, ok := lookup(env)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, env, v)
		}
		*dst = b
	}
	return nil
}
