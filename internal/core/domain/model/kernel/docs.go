// Package kernel provides the shared value objects of the restaurant domain.
//
// The package includes:
//   - Money: a non-negative decimal amount used for prices, order totals and revenue
//   - Contact: the name, address and phone number carried by staff and customers
//   - UUID: an identifier for events and other technical records
//
// Values in this package are immutable and safe to share between goroutines.
package kernel
