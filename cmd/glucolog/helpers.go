package glucolog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/varsha/glucolog/internal/app"
	"github.com/varsha/glucolog/internal/catalog"
	"github.com/varsha/glucolog/internal/db"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// loadCatalog returns the reference catalog for this invocation. An
// explicit --food-data path bypasses the shared instance so tests and
// one-off runs see exactly the file they named.
func loadCatalog() (*catalog.Catalog, error) {
	if foodDataPath != "" {
		return catalog.Load(foodDataPath), nil
	}
	path, err := app.DefaultCatalogPath()
	if err != nil {
		return nil, err
	}
	return catalog.Shared(path), nil
}

func parseDateTimeOrNow(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Now(), nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

func parseDateTime(name, value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected \"YYYY-MM-DD HH:MM\")", name, value)
	}
	return t, nil
}

// optionalIntFlag turns a glucose-style flag into a pointer: nil when
// the flag was not set on this invocation.
func optionalIntFlag(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func optionalFloatFlag(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func formatGlucose(v *int) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%d mg/dL", *v)
}
