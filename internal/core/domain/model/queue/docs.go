// Package queue provides the kitchen work queue: pending orders ordered by admission
// priority, smallest orders first, ties broken by insertion order.
package queue
