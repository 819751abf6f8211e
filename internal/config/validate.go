package config

import "fmt"

// Validate checks a loaded model for configuration errors. It runs before
// any job is expanded or executed; a non-nil error aborts the whole run
// with no partial execution.
func Validate(m *Model) error {
	if m == nil {
		return fmt.Errorf("configuration model is nil")
	}
	if m.Axis.Name == "" {
		return fmt.Errorf("axis name is required")
	}
	if len(m.Axis.Values) == 0 && len(m.Overrides) == 0 {
		return fmt.Errorf("axis %q declares no values and no job overrides; nothing to run", m.Axis.Name)
	}
	for _, v := range m.Axis.Values {
		if v == "" {
			return fmt.Errorf("axis %q contains an empty value", m.Axis.Name)
		}
	}

	if _, err := ParseInstallStrategy(m.Defaults[KeyInstallType]); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}

	for i, o := range m.Overrides {
		if o.Value == "" {
			return fmt.Errorf("job override %d: axis value is required", i+1)
		}
		// The override's install strategy is whatever survives the
		// overlay, so only validate the key when the override declares it.
		if token, ok := o.Env[KeyInstallType]; ok {
			if _, err := ParseInstallStrategy(token); err != nil {
				return fmt.Errorf("job override %d (%s=%s): %w", i+1, m.Axis.Name, o.Value, err)
			}
		}
	}
	return nil
}
