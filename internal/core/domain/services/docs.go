// Package services holds domain logic that does not belong to a single
// aggregate. Progression turns the configured delay table into the schedule
// an order follows after checkout.
package services
