package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName      = "glucolog"
	dbFileName      = "glucolog.db"
	catalogFileName = "fooddata.json"
)

func DefaultDBPath() (string, error) {
	if env := os.Getenv("GLUCOLOG_DB"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// DefaultCatalogPath is where the FoodData Central reference file is
// expected. A missing file is fine; the catalog just loads empty.
func DefaultCatalogPath() (string, error) {
	if env := os.Getenv("GLUCOLOG_FOOD_DATA"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, catalogFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
