package main

import (
	"flag"
	"os"
)

func main() {
	info := flag.Bool("info", false, "print per-iteration search info")
	flag.Parse()
	newShell(os.Stdout, *info).loop(os.Stdin)
}
