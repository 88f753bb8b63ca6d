package main

import (
	"log"

	"github.com/norman8823/tariff-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("could not start application: %v", err)
	}
}
