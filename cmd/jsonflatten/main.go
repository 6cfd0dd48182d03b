package main

import (
	"os"

	// go-json becomes the default JSON driver
	_ "github.com/reoring/jsonflatten/source"
)

func main() {
	os.Exit(Execute(os.Args[1:]))
}
