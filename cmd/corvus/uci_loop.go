package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/corvus-chess/corvus/engine"
	"github.com/corvus-chess/corvus/uci"
)

// runUCI drives the UCI session off stdin/stdout until "quit" or EOF,
// grounded on the teacher's main.go read loop.
func runUCI(cfg engine.Config) {
	session := uci.NewSession(os.Stdout)
	cfg.Apply(session.Searcher())
	if err := session.Execute(fmt.Sprintf("setoption name Hash value %d", cfg.HashMB)); err != nil {
		log.Println("applying configured hash size:", err)
	}

	bio := bufio.NewReader(os.Stdin)
	for {
		line, _, err := bio.ReadLine()
		if err != nil {
			log.Println("stdin closed:", err)
			return
		}
		if err := session.Execute(string(line)); err != nil {
			if err == uci.ErrQuit {
				return
			}
			log.Println("for line:", string(line))
			log.Println("error:", err)
		}
	}
}
