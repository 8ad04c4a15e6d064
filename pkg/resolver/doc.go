// Package resolver provides message resolver implementations for the problem
// translator.
//
// A resolver maps (message key, field) pairs to display text, typically
// maintained per locale by an operations or content team. Resolvers are
// configured once at application startup and treated as read-only afterwards;
// the translator falls back to the fault's own static text whenever a lookup
// yields nothing.
package resolver
