package main

import (
	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/palette/internal/cli"
)

func main() {
	cli.Execute()
}
