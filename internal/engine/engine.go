package engine

import (
	"fmt"
	"io"

	"github.com/specialistvlad/carcheck/internal/coin"
)

const (
	// SpeedStep is how much a single press of the gas or brake changes speed.
	SpeedStep = 10
	// MinSpeed is the lowest speed the car can report.
	MinSpeed = 0
	// MaxSpeed is the highest speed the car can reach.
	MaxSpeed = 60
)

// State is the engine state. The zero value is a car at rest with the
// engine off.
type State struct {
	Running bool
	Speed   int
}

// Controller owns a single car's engine state and writes its status lines to
// out. It is not safe for concurrent use.
type Controller struct {
	state   State
	out     io.Writer
	flipper coin.Flipper
}

// New creates a controller with the engine off and the car at rest. Both
// arguments are required.
func New(out io.Writer, flipper coin.Flipper) *Controller {
	if out == nil {
		panic("engine: nil output writer")
	}
	if flipper == nil {
		panic("engine: nil coin")
	}
	return &Controller{out: out, flipper: flipper}
}

// State returns a snapshot of the engine state.
func (c *Controller) State() State {
	return c.state
}

// Speed returns the current speed.
func (c *Controller) Speed() int {
	return c.state.Speed
}

// Moving reports whether the car has any speed.
func (c *Controller) Moving() bool {
	return c.state.Speed > MinSpeed
}

// TurnOn engages the engine.
func (c *Controller) TurnOn() {
	c.state.Running = true
}

// TurnOff disengages the engine and brings the car to rest.
func (c *Controller) TurnOff() {
	c.state.Running = false
	c.state.Speed = MinSpeed
}

// IncreaseSpeed adds one step of speed, capped at MaxSpeed. It does nothing
// while the engine is off.
func (c *Controller) IncreaseSpeed() {
	if !c.state.Running {
		return
	}
	c.state.Speed += SpeedStep
	if c.state.Speed > MaxSpeed {
		c.state.Speed = MaxSpeed
	}
}

// DecreaseSpeed removes one step of speed, floored at MinSpeed. It does
// nothing while the engine is off.
func (c *Controller) DecreaseSpeed() {
	if !c.state.Running {
		return
	}
	c.state.Speed -= SpeedStep
	if c.state.Speed < MinSpeed {
		c.state.Speed = MinSpeed
	}
}

// StartCar nudges the speed up only when the engine is off. Because
// IncreaseSpeed ignores a stopped engine, this never changes the speed.
// Callers that expect the car to pull away after TurnOn will find it still
// at rest.
func (c *Controller) StartCar() {
	if !c.state.Running {
		c.IncreaseSpeed()
	}
}

// StopCar takes one step of speed off a running car.
func (c *Controller) StopCar() {
	if c.state.Running {
		c.DecreaseSpeed()
	}
}

// HandleGas accelerates when accelerate is true and brakes otherwise.
func (c *Controller) HandleGas(accelerate bool) {
	if accelerate {
		c.IncreaseSpeed()
	} else {
		c.DecreaseSpeed()
	}
}

// ShiftGear announces a gear change.
func (c *Controller) ShiftGear(gear string) {
	c.Say(fmt.Sprintf("Shifting gear to %s", gear))
}

// ReportSpeed prints the current speed.
func (c *Controller) ReportSpeed() {
	c.Say(fmt.Sprintf("The current speed is %d.", c.state.Speed))
}

// CheckFuelLevel flips the coin to decide whether there is enough fuel,
// prints the verdict and returns it.
func (c *Controller) CheckFuelLevel() bool {
	hasFuel := c.flipper.Flip()
	if hasFuel {
		c.Say("You have enough fuel.")
	} else {
		c.Say("You don't have enough fuel.")
	}
	return hasFuel
}

// ServiceWarning flips the coin for whether the car needs service. Only a
// positive draw goes on to a fresh fuel check, and the car is flagged for
// servicing when both come up true.
func (c *Controller) ServiceWarning() {
	needsService := c.flipper.Flip()
	if needsService && c.CheckFuelLevel() {
		c.Say("The car needs servicing.")
	} else {
		c.Say("The car is in perfect condition.")
	}
}

// CheckEngine prints whether the engine is running. A running engine with
// the car at rest counts as not running.
func (c *Controller) CheckEngine() {
	c.Say("Checking engine...")
	if c.state.Running && c.Moving() {
		c.Say("Engine is running.")
	} else {
		c.Say("Engine is not running.")
	}
}

// Say writes a single status line.
func (c *Controller) Say(line string) {
	fmt.Fprintln(c.out, line)
}
