// Command ingest imports a carrier statement from the command line and prints the
// per-carrier summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/commissions/internal/access"
	"github.com/MrJamesThe3rd/commissions/internal/config"
	"github.com/MrJamesThe3rd/commissions/internal/database"
	"github.com/MrJamesThe3rd/commissions/internal/filestore"
	"github.com/MrJamesThe3rd/commissions/internal/ingest"
	ingestStore "github.com/MrJamesThe3rd/commissions/internal/ingest/store"
	"github.com/MrJamesThe3rd/commissions/internal/mapping"
	mappingStore "github.com/MrJamesThe3rd/commissions/internal/mapping/store"
	"github.com/MrJamesThe3rd/commissions/internal/producer"
	producerStore "github.com/MrJamesThe3rd/commissions/internal/producer/store"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
)

func main() {
	var (
		orgID       = flag.Int64("org", 0, "organization id")
		workspaceID = flag.Int64("workspace", 0, "workspace receiving the batches")
		userID      = flag.Int64("user", 0, "user recorded as uploader")
		role        = flag.String("role", string(access.RoleAdmin), "role of the uploading user")
	)

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: ingest -org N -workspace N -user N statement.csv")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *orgID == 0 || *workspaceID == 0 || *userID == 0 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("failed to read statement", "path", path, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString(), database.Options{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	files, err := filestore.Open(ctx, cfg.Upload.Backend, cfg.Upload.Dir, cfg.Upload.Bucket)
	if err != nil {
		slog.Error("failed to open file store", "error", err)
		os.Exit(1)
	}
	defer files.Close()

	var aliases map[statement.Field][]string
	if cfg.Import.AliasFile != "" {
		if aliases, err = statement.LoadAliases(cfg.Import.AliasFile); err != nil {
			slog.Error("failed to load aliases", "error", err)
			os.Exit(1)
		}
	}

	svc := ingest.NewService(
		ingestStore.New(db),
		producer.NewService(producerStore.New(db)),
		mapping.NewService(mappingStore.New(db)),
		files,
		ingest.NewLogNotifier(slog.Default()),
		statement.NewResolver(aliases),
		slog.Default(),
	)

	summaries, err := svc.Upload(ctx, ingest.UploadParams{
		Scope: access.Scope{
			OrgID:        *orgID,
			UserID:       *userID,
			Role:         access.Role(*role),
			WorkspaceIDs: []int64{*workspaceID},
		},
		WorkspaceID: workspaceID,
		Filename:    filepath.Base(path),
		Data:        data,
	})
	if err != nil {
		slog.Error("failed to import statement", "path", path, "error", err)
		os.Exit(1)
	}

	fmt.Println(render(summaries))
}
