package main

import (
	"ClinicBook/internal/bootstrap"
	pkg "ClinicBook/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
