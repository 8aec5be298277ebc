package main

import (
	fixulps "go-fixulps/fixulps"

	log "github.com/sirupsen/logrus"
)

func main() {
	err := fixulps.CommandFixUlps()
	if err != nil {
		log.Fatal(err)
	}
}
