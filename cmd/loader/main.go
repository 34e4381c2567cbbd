package main

import (
	"log"
	"os"
	"runtime/debug"

	"github.com/campusbase/sheetloader/pkg/configuration"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	Execute()
}
