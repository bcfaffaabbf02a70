package depositdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/routelabs/sweep-middleware/pkg/depositstore"
	mghelper "github.com/routelabs/sweep-middleware/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating deposits table...")
		if err := mghelper.CreateSchema(ctx, db, &depositstore.DepositDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &depositstore.DepositDao{}, "user_address", "status")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping deposits table...")
		return mghelper.DropTables(ctx, db, &depositstore.DepositDao{})
	})
}
