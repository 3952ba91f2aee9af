package main

import (
	"os"

	"github.com/sureinsurance/sure-api/actions"
	"github.com/sureinsurance/sure-api/domain"
	"github.com/sureinsurance/sure-api/log"
)

var GitCommitHash string

// main is the starting point for your Buffalo application.
// You can feel free and add to this `main` method, change
// what it does, etc...
// All we ask is that, at some point, you make sure to
// call `app.Serve()`, unless you don't want to start your
// application that is. :)
func main() {
	log.InstallSentryHook(domain.Env.SentryDSN, domain.Env.GoEnv, GitCommitHash)

	app := actions.App()
	if err := app.Serve(); err != nil {
		if err.Error() != "context canceled" {
			log.Fatal(err)
		}
		os.Exit(0)
	}
}
