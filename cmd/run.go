package cmd

import (
	"fmt"
	"os"

	"github.com/jtrask/stagehand/internal/app"
	"github.com/jtrask/stagehand/internal/config"
	"github.com/jtrask/stagehand/internal/manifest"
	"github.com/jtrask/stagehand/internal/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <lesson.json>",
	Short: "Run a lesson headlessly, following rule-driven navigation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		m, err := manifest.Load(args[0])
		if err != nil {
			return fmt.Errorf("load lesson: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		// config db_path applies only when neither flag nor env override.
		if cfg.DBPath != "" {
			if p, _ := cmd.Flags().GetString("db"); p == "" && os.Getenv("STAGEHAND_DB") == "" {
				dbPath = cfg.DBPath
				if err := store.EnsureDir(dbPath); err != nil {
					return err
				}
			}
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		return app.Run(cmd.Context(), app.Options{
			Manifest:         m,
			Events:           eventRepo,
			Snapshots:        st.SnapshotRepo(),
			Out:              cmd.OutOrStdout(),
			CheckTimeoutSecs: cfg.CheckTimeoutSecs,
			InitTimeoutSecs:  cfg.InitTimeoutSecs,
			SnapshotKeep:     cfg.SnapshotKeep,
		})
	},
}
