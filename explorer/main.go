package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Errorf("[component: explorer][status: ERROR] %s", err.Error())
		os.Exit(1)
	}
}
