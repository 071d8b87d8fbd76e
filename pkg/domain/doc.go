/*
Package domain contains the core value types of the splitcalc engine.

It defines the inputs the calculator combines and the result it derives. This
package is kept pure and free of I/O, streams and presentation concerns.

# Key Entities

  - Bill: An optional, non-negative bill amount. Absent until the user enters one.
  - TipSelection: A tagged value (None, Percentage or FixedAmount).
  - CalculationResult: The derived per-person share, total bill, and total tip.
  - SessionState: The latest known value of each input, held by the caller.
*/
package domain
