package main

import (
	"os"
	_ "time/tzdata"

	"github.com/amirhossein-jamali/calendar-units/cmd/calunits/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
