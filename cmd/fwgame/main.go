package main

import (
	"github.com/fillword/fillwordgame-go/internal/cli"
)

func main() {
	cli.Execute()
}
