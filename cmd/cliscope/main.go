package main

import (
	"os"

	"github.com/schmitthub/cliscope/internal/cliscope"
)

func main() {
	os.Exit(cliscope.Main())
}
