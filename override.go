// FILE: override.go
package beautylog

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ApplyConfigString applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	logger := beautylog.NewLogger()
//	err := logger.ApplyConfigString(
//	    "directory=/var/log/app",
//	    "file_level=debug",
//	    "max_size_bytes=1048576",
//	)
func (l *Logger) ApplyConfigString(overrides ...string) error {
	cfg := l.getConfig().Clone()

	if err := applyConfigStrings(cfg, overrides); err != nil {
		return err
	}

	return l.ApplyConfig(cfg)
}

// applyConfigStrings applies every "key=value" override to cfg, reporting all failures together
func applyConfigStrings(cfg *Config, overrides []string) error {
	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	return combineConfigErrors(errs)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("beautylog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := strings.TrimPrefix(err.Error(), "beautylog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	field, ok := configField(cfg, key)
	if !ok {
		return configErrorf("unknown config key: %s", key)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int64:
		// Level keys accept both numeric and named values
		if strings.HasSuffix(key, "_level") {
			if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
				field.SetInt(numVal)
				return nil
			}
			levelVal, err := Level(value)
			if err != nil {
				return fmtErrorf("invalid level value '%s' for %s: %w", value, key, err)
			}
			field.SetInt(levelVal)
			return nil
		}
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for %s '%s': %w", key, value, err)
		}
		field.SetInt(intVal)

	case reflect.Bool:
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
		}
		field.SetBool(boolVal)

	default:
		return fmtErrorf("unsupported field type for %s: %v", key, field.Kind())
	}

	return nil
}

// configField finds the settable field tagged with key
func configField(cfg *Config, key string) (reflect.Value, bool) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
