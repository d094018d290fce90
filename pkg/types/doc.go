// Package types defines the public data model and error taxonomy of the dat
// decoder: the typed error kinds surfaced by Load and the query facade, the
// closed version enumerations, cross-reference relations, and the record
// structs the facade hands out.
package types
