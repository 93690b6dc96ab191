package main

import (
	"github.com/smallbiznis/gridplant/internal/config"
	"github.com/smallbiznis/gridplant/internal/migration"
	"github.com/smallbiznis/gridplant/internal/observability"
	"github.com/smallbiznis/gridplant/internal/server"
	"github.com/smallbiznis/gridplant/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
