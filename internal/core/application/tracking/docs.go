// Package tracking drives confirmed orders through the delivery progression.
//
// A Tracker owns one order. When started it schedules every remaining
// transition at once, each at its cumulative offset from the start, and keeps
// one cancellation token per scheduled transition. Every transition is written
// to the order store and reported to the progress sink. Reaching delivered
// archives the order into the per-user and global history and enables the
// rating prompt.
//
// All transitions and the rating operation of a tracker are serialised by a
// single mutex. Stop cancels every pending token and no transition is applied
// once Stop has returned.
//
// Store failures never stop the progression: they are logged and reported to
// the customer as warnings.
//
// A Registry keeps at most one tracker per user.
package tracking
