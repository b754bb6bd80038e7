package main

import (
	"SchedCheck/bootstrap"
	"flag"
	"log"
)

func main() {
	flag.Parse()
	log.Println("Starting analyzer...")

	if _, err := bootstrap.Run(); err != nil {
		log.Fatal("Failed to start analyzer:", err)
	}
}
