package env

import (
	"bufio"
	"os"
	"strings"
)

// Variables that override where the program reads and writes its files.
const (
	ConfigPath = "SOLIDS_CONFIG"
	ScenePath  = "SOLIDS_SCENE"
	LogPath    = "SOLIDS_LOG"
)

// Load reads the given file (e.g. ".env") and sets an environment variable for each
// KEY=VALUE line whose key is not already set, so the real environment wins.
// Empty lines and lines starting with # are skipped. The file may be missing;
// that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

// parseLine splits KEY=VALUE, dropping one layer of matching quotes around VALUE.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// Path returns the value of key, or fallback when it is unset or empty.
func Path(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
