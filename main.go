// Package main is the entry point for the qrz-lookup CLI.
// It looks up amateur radio callsigns in the QRZ XML data service.
package main

import (
	"qrzlookup/cli/cmd"
)

func main() {
	cmd.Execute()
}
