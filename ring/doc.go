// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-owning circular-buffer views over caller-supplied slices.
// A View adds double-ended queue semantics to storage it does not own:
// the caller decides where element memory lives (stack array, pooled slab,
// shared segment) and the view contributes only wraparound index arithmetic.
//
// Displacement behavior is pluggable through Popper implementations, slot
// lifecycle through SlotPolicy. Views are for single-goroutine use; callers
// that share one across goroutines serialize access themselves.
// See view.go, popper.go, iterator.go for implementation details.
package ring
