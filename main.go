package main

import (
	"embed"

	"github.com/itsnotganeva/bankproject/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
