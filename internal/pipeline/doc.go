// Package pipeline provides the per-record transformation pipeline that
// produces the final output rows for one file.
//
// Processing pipeline:
//  1. Resolve every configured column against the raw record
//     (auto-sequence, transform, or raw fetch, then coercion and default)
//  2. Expand the resolved record into one physical row per installment
//  3. Accumulate physical rows in input order
//
// One Pipeline instance serves exactly one input file: the auto-sequence
// counter it owns restarts at 1 for the next file.
package pipeline
