package main

import (
	"classroom/cmd/app"
	"os"
)

func main() {
	app.Args.Parse()

	app.StartInit()

	app.InitDefault(*app.Args.Config)

	app.InitLogger()

	if *app.Args.MigrateDB != "" {
		if err := app.MigrateDB(*app.Args.MigrateDB); err != nil {
			println("Failed to apply migration.\n" + err.Error())
			app.Shutdown()
			os.Exit(1)
		}
		app.Shutdown()
		os.Exit(0)
	}

	app.InitConnections()

	Router := app.InitRouter()

	app.EndInit()

	app.Start(Router)
}
