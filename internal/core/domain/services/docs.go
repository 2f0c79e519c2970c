// Package services provides domain services that coordinate orders and staff members,
// business logic that does not belong to a single aggregate.
//
// The package includes:
//   - OrderDispatcher: pairs orders with chefs and couriers and releases them again
//
// Every method checks its preconditions before touching either side, so a failed call
// leaves both the order and the staff member unchanged.
package services
