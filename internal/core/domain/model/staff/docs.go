// Package staff provides the restaurant's chefs and delivery couriers and the Roster
// that holds them.
//
// Chef and Courier are separate concrete types sharing a common profile. Both satisfy
// Member, which exposes identity, the role tag and the assign/release cycle. A member
// is available exactly when it holds no assigned orders.
//
// Staff keep order ids, never orders: assignment lists are back-references for lookup
// and reporting while lifecycle authority stays with the restaurant coordinator.
package staff
