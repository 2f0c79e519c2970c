// Package customer models the people who order from the restaurant and the cart each
// of them fills before checkout.
//
// A Customer owns exactly one Cart. The cart never references placed orders; order
// history belongs to the restaurant coordinator.
package customer
