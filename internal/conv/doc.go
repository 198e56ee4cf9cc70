// Package conv provides safe integer conversion and overflow-aware arithmetic.
//
// Conversions perform bounds checking to prevent silent truncation when moving
// between Go's platform-dependent int and fixed-width types. The arithmetic
// helpers either report overflow or saturate at math.MaxUint64:
//
//	upper := conv.MulSaturating(largest, largest) // safe ceiling for a search window
//	lcm, ok := conv.MulUint64(lcm, power)         // ok == false on overflow
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
