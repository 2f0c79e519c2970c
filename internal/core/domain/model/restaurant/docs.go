// Package restaurant provides the Restaurant coordinator, the aggregate that owns the
// menu catalog, the staff roster, the customer registry, the kitchen queue and the
// running statistics of one restaurant.
//
// Every exported method runs under a single mutex, so admission, dispatch,
// completion and delivery are atomic with respect to each other. Orders are returned
// as clones; staff members and customers are returned live because their mutable
// state carries its own lock.
//
// Lookups report absence with a boolean. Mutations report failures with the error
// kinds of the errs, menu and order packages.
package restaurant
