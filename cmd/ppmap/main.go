package main

import (
	"os"

	"github.com/schmitthub/ppmap/internal/ppmap"
)

func main() {
	os.Exit(ppmap.Main())
}
