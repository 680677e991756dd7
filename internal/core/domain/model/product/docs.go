// Package product provides the Product aggregate for the replenishment
// domain. Products are the variants a client's total order quantity is split
// across; each carries a standard share percent and a warehouse stock balance.
//
// The replenishment engine treats products as read-mostly: configuration
// management owns shares and activation, while dispatch and cancellation move
// the stock balance.
package product
