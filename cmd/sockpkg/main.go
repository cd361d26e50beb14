package main

import (
	"github.com/fpagliughi/sockpkg/pkg/cli"
)

func main() {
	cli.Execute()
}
