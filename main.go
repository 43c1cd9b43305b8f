package main

import (
	_ "embed"

	"github.com/evanhugh/assistant-hub-service/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
