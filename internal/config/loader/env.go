package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// A variable PREFIX_SECTION_KEY_NAME becomes section.key_name. Only
// sections listed in the loader are read.
type EnvLoader struct {
	prefix   string
	sections map[string]bool
	mapping  map[string]string
	environ  func() []string
}

// NewEnvLoader creates an environment variable loader. The prefix includes
// the trailing underscore (e.g. "INKWELL_").
func NewEnvLoader(prefix string, sections ...string) *EnvLoader {
	l := &EnvLoader{
		prefix:   prefix,
		sections: make(map[string]bool, len(sections)),
		mapping:  make(map[string]string),
		environ:  os.Environ,
	}
	for _, s := range sections {
		l.sections[s] = true
	}
	return l
}

// AddMapping maps an environment variable to a dotted config path,
// bypassing the section rule.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads the environment. It never returns an error.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, ok := l.mapping[name]
		if !ok {
			path, ok = l.envToPath(name)
		}
		if ok {
			setByPath(config, path, parseValue(value))
		}
	}

	return config, nil
}

// envToPath converts INKWELL_SAVE_ADD_TRAILING_NEWLINE to
// save.add_trailing_newline.
func (l *EnvLoader) envToPath(env string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || key == "" || !l.sections[section] {
		return "", false
	}
	return section + "." + key, true
}

// parseValue types an environment value. Booleans use words only, so
// numeric settings can be set to 0 or 1.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		out := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
