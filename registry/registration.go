/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

// Registration is the capability a value type implements to take part
// in a registry. The freeze step assigns each value its raw id through
// AcceptRawID, in insertion order starting at zero; after that the
// value reports the same id through RawID for the life of the process.
//
// Implementations use pointer receivers so the assigned id sticks.
type Registration interface {
	// AcceptRawID stores the raw id assigned at freeze time.
	AcceptRawID(id int)

	// RawID returns the raw id previously accepted.
	RawID() int
}
