// Package inspection runs the pre-drive checklist.
//
// The checklist is an HCL document embedded in the binary. Each `step` block
// carries two labels: the runner that performs it and a unique step name.
//
//	step "print" "mirrors" {
//	  message = "Adjusting mirrors..."
//	}
//
//	step "service_warning" "service" {}
//
// Runners are Go functions looked up by name in a Registry. Step arguments
// are HCL expressions evaluated against an `engine` object holding the
// current `running` and `speed` values, so a message may read
// "Speed is ${engine.speed}.".
//
// A Sequencer executes the steps strictly in declaration order. No step is
// skipped.
package inspection
