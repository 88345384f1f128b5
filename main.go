package main

import "xmp-reconcile/internal/cli"

func main() {
	cli.Execute()
}
