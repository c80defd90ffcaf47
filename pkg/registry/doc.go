// Package registry provides the installer registry: a thread-safe mapping
// from package identifier to normalized installer descriptor. Registration
// validates and normalizes raw descriptor input; iteration order is by
// descending priority, stable on registration order.
package registry
