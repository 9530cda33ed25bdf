package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnvUp loads ENV_FILE when set, otherwise the nearest ".env" in the
// working directory or up to maxDepth parents. Variables already present in
// the environment win. A missing file is not an error.
func LoadDotEnvUp(maxDepth int) {
	if p := os.Getenv("ENV_FILE"); p != "" {
		_ = godotenv.Load(p)
		return
	}
	if maxDepth <= 0 {
		maxDepth = 6
	}

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i <= maxDepth; i++ {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
