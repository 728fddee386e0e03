// Package mock provides deterministic test doubles for the ai interfaces.
//
// Default behavior generates FNV-seeded pseudo-random unit vectors and
// word-derived captions, so the same input always produces the same output
// without any external model service. Behavior can be overridden per test
// via the exported function fields.
package mock
