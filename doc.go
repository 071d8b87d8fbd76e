/*
Package splitcalc is a small reactive engine for splitting a bill between a party.

It combines three independently updating inputs (bill amount, tip selection, and
party size) into a derived result, and forwards a reset signal that tells the
host to restore its initial state. The engine performs no I/O; hosts (a CLI, a
TUI, a test) push values into channels and render whatever comes out.

# Concept

Inputs are multicast channels from package stream. The engine subscribes to all
three value channels and recomputes with combine-latest semantics: once every
channel has emitted at least once, each new emission on any of them produces
exactly one fresh CalculationResult using the latest value of the other two.

# Usage

Most hosts use package session, which owns the channels and the reset protocol:

	package main

	import (
		"fmt"

		"github.com/aretw0/splitcalc/pkg/domain"
		"github.com/aretw0/splitcalc/pkg/session"
	)

	func main() {
		s := session.New()
		defer s.Close()

		s.OnResult(func(r domain.CalculationResult) {
			fmt.Printf("per person: %.2f\n", r.AmountPerPerson)
		})

		s.SetBillText("200")
		s.SelectTip(domain.MustFixed(20))
		s.SetSplit(5) // per person: 44.00
	}

Hosts that bring their own channels call Engine.Transform directly.
*/
package splitcalc
