/*
Package session owns the input channels of one calculator and its reset protocol.

A Session is the caller the engine talks about: it holds the latest bill, tip and
party size, clamps and parses values at the channel boundary, and restores the
initial state whenever the engine forwards a reset. Views subscribe with
OnResult and OnReset and never touch the channels directly.
*/
package session
