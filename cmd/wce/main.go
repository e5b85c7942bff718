// wce explores the world's independent countries from the terminal or a browser.
package main

import (
	"os"

	"github.com/corey/wce/cmd/wce/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
