package glucolog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varsha/glucolog/internal/app"
	"github.com/varsha/glucolog/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local glucolog database",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized glucolog database at %s\n", path)

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		if cat.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Reference catalog: empty (manual macro entry only)")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Reference catalog: %d foods\n", cat.Len())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
