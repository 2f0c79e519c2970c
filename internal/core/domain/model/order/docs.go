// Package order provides the Order aggregate placed by a customer and tracked by the
// restaurant coordinator through the kitchen and delivery pipeline.
//
// The package includes:
//   - Order: lines, fixed total price, lifecycle status and staff assignment
//   - Line: one priced (menu item, quantity) pair captured at admission
//   - Status: the lifecycle state machine
//   - StatusChanged: the event emitted for every lifecycle transition
//   - NotFoundError and InvalidStateError: the order-level error kinds
//
// Key business rules:
//   - An order has at least one line
//   - The total equals the sum of line prices at creation and is never recomputed
//   - Status follows Placed -> Preparing -> ReadyForDelivery -> OutForDelivery -> Delivered
//   - Only a Placed order can be cancelled
//   - Completing or delivering requires the staff member the order is assigned to
package order
