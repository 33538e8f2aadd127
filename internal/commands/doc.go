// Package commands owns the oi:DECS command directories.
//
// Ownership boundary:
// - per-variant short command -> WAMP uri tables
// - lookup and lookup failure
// - advisory naming classification
//
// Callers pick the variant. The directory never detects a system, parses an
// address, or talks to an instrument.
//
// Naming convention for short commands:
// - get_ requests information from the system
// - set_ sets a value on the system
// - PUBLISH writes to an event topic instead of calling an RPC
//
// get_a_WAMP_error and set_a_WAMP_error resolve to an address no router will
// serve. They exist so drivers can exercise their error path; keep them broken.
package commands
