package core

import (
	"runtime"

	"github.com/hubastard/strata/engine/logging"
)

// Main is the process entry point: it builds the application with create,
// runs it until the window closes and then tears it down. It must be called
// from the main goroutine; graphics contexts require the main OS thread.
//
//	func main() {
//		if err := core.Main(newSandbox); err != nil {
//			log.Fatal(err)
//		}
//	}
func Main(create func() (*Application, error)) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer logging.Sync()

	logging.Core().Debug("initialised log")

	app, err := create()
	if err != nil {
		return err
	}
	app.Run()
	return app.Close()
}
