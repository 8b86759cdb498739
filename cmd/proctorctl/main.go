package main

import (
	"github.com/nexproctor/proctor-server/internal/cli"
)

func main() {
	cli.Execute()
}
