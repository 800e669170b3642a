package main

import (
	"flag"
	"log"
	"os"

	"github.com/miskibin/go-draughts/internal/engine"
	"github.com/miskibin/go-draughts/internal/hub"
	"github.com/miskibin/go-draughts/internal/store"
)

var (
	hashMB  = flag.Int("hash", 32, "transposition table size in MB")
	noStore = flag.Bool("no-store", false, "disable persistence of engine configuration")
)

func main() {
	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.TableSizeMB = *hashMB

	if !*noStore {
		if dbDir, err := store.DatabaseDir(); err != nil {
			log.Printf("warning: could not resolve data directory: %v (running without persistence)", err)
		} else if db, err := store.Open(dbDir); err != nil {
			log.Printf("warning: could not open store at %s: %v (running without persistence)", dbDir, err)
		} else {
			defer db.Close()
			if loaded, err := db.LoadEngineConfig(store.EngineConfig{
				DepthLimit:  cfg.DepthLimit,
				TimeLimit:   cfg.TimeLimit,
				TableSizeMB: cfg.TableSizeMB,
			}); err == nil {
				cfg.DepthLimit = loaded.DepthLimit
				cfg.TimeLimit = loaded.TimeLimit
				cfg.TableSizeMB = loaded.TableSizeMB
			}
		}
	}

	eng := engine.NewEngine(cfg)
	protocol := hub.New(eng, os.Stdout)
	protocol.Run(os.Stdin)
}
