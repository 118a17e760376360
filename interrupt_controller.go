// interrupt_controller.go - INTENB/INTPND gating onto the VIP CPU line (spec.md §4.7)
//
// License: GPLv3 or later

package vip

// InterruptController applies the enable mask to the pending set and
// asserts or clears the host CPU's VIP interrupt line (line 4)
// accordingly. It holds no state of its own beyond the CPU facade.
type InterruptController struct {
	cpu HostCPU
}

func NewInterruptController(cpu HostCPU) *InterruptController {
	return &InterruptController{cpu: cpu}
}

// Evaluate asserts LineVIP iff (intenb & intpnd) != 0, and deasserts it
// otherwise. Callers pass the current INTENB/INTPND state after every
// change to either register.
func (ic *InterruptController) Evaluate(intenb, intpnd uint16) {
	ic.cpu.SetInterruptLine(LineVIP, intenb&intpnd != 0)
}
