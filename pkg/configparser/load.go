package configparser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrNoFilePath = errors.New("no file path provided")

// ${VAR:-default}
var substitution = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*):-(.*)\}$`)

// LoadAndParseYaml loads the YAML file into the environment and parses the
// environment into cfg. A missing file is not an error: defaults and
// already exported variables still apply.
func LoadAndParseYaml(filepath string, cfg any) error {
	if err := LoadYamlFile(filepath); err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, ErrNoFilePath) {
		return err
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("could not parse environment: %w", err)
	}

	return nil
}

// LoadDotEnv loads .env style files into the environment without overriding
// variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("could not load %s: %w", p, err)
		}
	}
	return nil
}

// LoadYamlFile reads a YAML file and loads variables into the environment.
// Nested keys are joined with '_' and upper-cased: log: {level: INFO} -> LOG_LEVEL=INFO.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("could not open YAML file: %w", err)
	}

	vars, err := Flatten(data)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		// Set the environment variable only if it's not already set
		if os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, vars[key]); err != nil {
			return fmt.Errorf("could not set env var %s: %w", key, err)
		}
	}

	return nil
}

// Flatten converts a YAML document into env-style key/value pairs.
func Flatten(data []byte) (map[string]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}

	out := make(map[string]string)
	flatten(nil, doc, out)
	return out, nil
}

func flatten(prefix []string, node map[string]any, out map[string]string) {
	for k, v := range node {
		path := append(append([]string{}, prefix...), k)
		key := strings.ToUpper(strings.Join(path, "_"))

		switch val := v.(type) {
		case map[string]any:
			flatten(path, val, out)
		case nil:
			// empty values don't represent environment variables
		case []any:
			items := make([]string, 0, len(val))
			for _, item := range val {
				items = append(items, fmt.Sprint(item))
			}
			out[key] = strings.Join(items, ",")
		default:
			out[key] = substitute(fmt.Sprint(val))
		}
	}
}

// substitute resolves ${VAR:-default}
func substitute(value string) string {
	m := substitution.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	if envValue := os.Getenv(m[1]); envValue != "" {
		return envValue
	}
	return m[2]
}
