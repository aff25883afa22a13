package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/carcheck/internal/ctxlog"
)

// LetsGetMoving gets the car ready and then says whether it is moving.
func (a *App) LetsGetMoving(ctx context.Context) error {
	if err := a.GetReadyToGo(ctx); err != nil {
		return err
	}
	a.AcknowledgeSpeed()
	return nil
}

// GetReadyToGo turns the engine on, runs the inspection checklist, starts
// the car and reports its speed.
func (a *App) GetReadyToGo(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	a.car.TurnOn()
	logger.Debug("Engine turned on.")

	if err := a.sequencer.Run(ctx, a.car); err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	a.car.StartCar()
	logger.Debug("Car started.", "speed", a.car.Speed())

	a.car.ReportSpeed()
	return nil
}

// AcknowledgeSpeed prints whether the car is moving.
func (a *App) AcknowledgeSpeed() {
	if a.car.Moving() {
		a.car.Say("We're moving.")
	} else {
		a.car.Say("We're not moving yet.")
	}
}
