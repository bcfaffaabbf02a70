// Package depositdb holds all the migrations for the deposit database
package depositdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the deposit database
var Migrations = migrate.NewMigrations()
