// Package storefront implements the back-office API for a small shop:
// a token based authentication pipeline, role gated routes, the order
// lifecycle (create, pay, deliver) and the administrative listing
// endpoints with their pagination envelope.
//
// The package is transport and storage explicit: HTTP handlers are
// fiber handlers, persistence goes through bun repositories, and every
// failure is a categorized error that the router converts into a
// status code plus a {"message": ...} body.
package storefront
