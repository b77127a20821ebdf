// Package domain contains the core business types for CineMatch.
//
// Types here have no dependencies on adapters or infrastructure.
// All packages may import domain; domain imports nothing internal.
package domain
