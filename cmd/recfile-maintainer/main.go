// Command recfile-maintainer runs the recfile maintenance daemon: a
// cron-scheduled vacuum pass over every table in a database file, per a
// YAML config naming the file, the schedule, and any tables to skip.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"recfile"
	"recfile/internal/maintain"
)

func main() {
	configPath := flag.String("config", "recfile-maintainer.yaml", "path to the maintainer's YAML config")
	once := flag.Bool("once", false, "run a single vacuum pass and exit instead of starting the cron schedule")
	flag.Parse()

	cfg, err := maintain.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := recfile.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.DatabasePath, err)
	}

	sched := maintain.NewScheduler(db, cfg)

	if *once {
		if err := sched.RunOnce(context.Background()); err != nil {
			log.Fatalf("vacuum pass: %v", err)
		}
		log.Printf("vacuumed: %v", sched.LastVacuumed())
		return
	}

	if err := sched.Start(); err != nil {
		log.Fatalf("start scheduler: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	sched.Stop()
}
