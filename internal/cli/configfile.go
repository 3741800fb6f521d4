package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// LoadConfigArgs reads the quickfind config file and returns parsed arguments.
// Config file location: QUICKFIND_CONFIG_PATH env var, or ~/.quickfind.
// Format: one flag per line, # comments, empty lines ignored.
// Returns nil if no config file found.
func LoadConfigArgs() []string {
	path := os.Getenv("QUICKFIND_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".quickfind")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args
}

// LoadEnv loads environment variables from the nearest .env file, searching
// up from the working directory. Variables already set are kept.
func LoadEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
