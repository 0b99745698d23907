// File: mem/errors.go
// Author: momentics <momentics@gmail.com>
//
// Errors specific to slab lifecycle.

package mem

import "fmt"

// ErrSlabReleased reports an operation on a slab already returned to the
// system.
var ErrSlabReleased = fmt.Errorf("slab already released")
