package main

import (
	"printshop/internal/api"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("App start")
	api.StartServer()
	log.Info("App terminated")
}
