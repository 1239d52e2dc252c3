package main

import (
	cmd "github.com/mightyai/mighty-gateway/cmd/gateway"
	"github.com/mightyai/mighty-gateway/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting mighty-gateway")
	cmd.Execute()
}
