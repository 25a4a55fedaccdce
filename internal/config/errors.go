package config

import "fmt"

// ConfigError reports a missing or malformed configuration value.
// Section and Key are empty when the failure is not tied to one entry.
type ConfigError struct {
	Section string
	Key     string
	Err     error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Section == "":
		return fmt.Sprintf("config: %v", e.Err)
	case e.Key == "":
		return fmt.Sprintf("config: [%s]: %v", e.Section, e.Err)
	default:
		return fmt.Sprintf("config: [%s] %s: %v", e.Section, e.Key, e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(section, key string, err error) error {
	return &ConfigError{Section: section, Key: key, Err: err}
}
