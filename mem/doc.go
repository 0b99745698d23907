// File: mem/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Page-backed slab storage for ring and heap views.
// A slab is a fixed slice of elements allocated outside the regular Go heap
// where the platform allows it, with a transparent heap fallback everywhere
// else. Slabs exist to give views storage whose lifetime the caller controls
// explicitly. All allocation paths hand back zeroed memory.
package mem
