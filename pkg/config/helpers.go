package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SetValue sets a settings value by key.
// Supported keys:
//   - log_level: string - Logging level (debug, info, warn, error)
//   - color_output: bool - Whether to use colored output
//   - http_timeout: duration - Request timeout, e.g. 30s; 0 disables it
//   - user_agent: string - User-Agent header for repository requests
//   - max_concurrent_downloads: int - Download limit; 0 is unbounded
//   - layout.<field>: string - Repository layout, e.g. layout.default_branch
func (s *Settings) SetValue(key, value string) error {
	switch key {
	case "log_level":
		s.LogLevel = value
	case "color_output":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		s.ColorOutput = boolVal
	case "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		s.HTTPTimeout = d
	case "user_agent":
		s.UserAgent = value
	case "max_concurrent_downloads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		s.MaxConcurrent = n
	case "layout.raw_content_host":
		s.Layout.RawContentHost = value
	case "layout.default_branch":
		s.Layout.DefaultBranch = value
	case "layout.manifest_path":
		s.Layout.ManifestPath = value
	case "layout.hooks_base_path":
		s.Layout.HooksBasePath = value
	case "layout.file_prefix":
		s.Layout.FilePrefix = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// GetValue returns a settings value by key as a string.
func (s *Settings) GetValue(key string) (string, error) {
	v, ok := s.ToMap()[key]
	if !ok {
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
	return v, nil
}

// Keys returns every settings key in sorted order.
func (s *Settings) Keys() []string {
	m := s.ToMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToMap flattens the settings into yaml key/value pairs. Nested structs use
// dotted keys. This is useful for displaying the configuration.
func (s *Settings) ToMap() map[string]string {
	result := make(map[string]string)
	flatten(reflect.ValueOf(*s), "", result)
	return result
}

func flatten(v reflect.Value, prefix string, out map[string]string) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}

		// Handle yaml tags with options (e.g., "user_agent,omitempty")
		key := prefix + strings.Split(yamlTag, ",")[0]

		fieldValue := v.Field(i)
		switch {
		case fieldValue.Type() == reflect.TypeOf(time.Duration(0)):
			out[key] = time.Duration(fieldValue.Int()).String()
		case fieldValue.Kind() == reflect.Struct:
			flatten(fieldValue, key+".", out)
		case fieldValue.Kind() == reflect.Bool:
			out[key] = strconv.FormatBool(fieldValue.Bool())
		case fieldValue.Kind() == reflect.Int:
			out[key] = strconv.FormatInt(fieldValue.Int(), 10)
		case fieldValue.Kind() == reflect.String:
			out[key] = fieldValue.String()
		default:
			out[key] = fmt.Sprintf("%v", fieldValue.Interface())
		}
	}
}
