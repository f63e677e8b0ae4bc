// Package stream provides push-based typed event streams with
// synchronous, ordered propagation.
//
// A Stream dispatches each occurrence to its subscribers in
// subscription order, on the emitting goroutine, before Emit returns.
// Emissions are serialized with a mutex, so values injected
// asynchronously (for example a network completion firing on its own
// goroutine) enter the graph one at a time and propagate through a
// well-defined order.
//
// # Operators
//
//   - Map: transform each occurrence
//   - Filter: keep occurrences matching a predicate
//   - Tap: side-effect without altering the occurrence
//   - Scan: fold with an initial value, emitting each accumulator
//   - Merge: fan several streams into one
//   - Hold: latch the latest occurrence into a readable Cell
//
// # Usage
//
//	src := stream.New[int]()
//	doubled := stream.Map(src, func(n int) int { return n * 2 })
//	doubled.Subscribe(func(n int) { fmt.Println(n) })
//	src.Emit(21) // prints 42
//
// # Reentrancy
//
// A handler must not Emit back into the stream it is subscribed on;
// doing so would deadlock the propagation lock. Emitting into a
// different stream (the usual shape of a derived graph) is fine.
package stream
