package main

import (
	"fmt"
	"os"

	"github.com/hnimtadd/fixture"
	"github.com/hnimtadd/fixture/geom"
	"github.com/hnimtadd/fixture/logger"
	"github.com/hnimtadd/fixture/status"
)

func main() {
	log := logger.New(logger.Options{Buffer: os.Stderr, Level: logger.DebugLevel})

	st := status.FromErr(run(log))
	if !st.IsOK() {
		log.Error("run failed", "status", st.String())
		os.Exit(1)
	}
	log.Info("done", "version", fixture.Version, "config", fixture.GlobalConfig, "status", st.String())
}

func run(log logger.Logger) error {
	fmt.Println("Hello, World!")

	origin := geom.NewPoint(0, 0)
	target := geom.NewPoint(3, 4)

	canvas := geom.NewCanvas(geom.CanvasOptions{})
	canvas.Add("origin", origin)
	canvas.Add("target", target)
	if err := canvas.Draw(os.Stdout); err != nil {
		return err
	}

	logger.Debugf(log, "distance %v -> %v", origin, target)
	_, err := fmt.Printf("distance: %g\n", origin.Distance(target))
	return err
}
