// Package commands contains the operations that change an order: placing it
// at checkout, tracking it, rating it and stopping its tracker.
//
// Every command is built by a constructor that validates its input and is
// executed by its own handler.
package commands
