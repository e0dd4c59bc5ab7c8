package config

import (
	"bufio"
	"os"
	"strings"
)

// LoadDotEnv loads KEY=VALUE pairs from a local .env file into the process
// environment. Variables already set in the environment win, so a stale
// .env entry never shadows real deployment config.
func LoadDotEnv(path string) error {
	file, err := os.Open(path)
	if err != nil {
		// No .env in production is the normal case.
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Tolerate shell-style "export KEY=VALUE" lines.
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if key == "" || os.Getenv(key) != "" {
			continue
		}
		os.Setenv(key, value)
	}

	return scanner.Err()
}
