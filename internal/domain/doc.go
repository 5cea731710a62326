// Package domain contains the core business entities, value objects, and
// domain logic of the application: users, their notes, and the study
// questions derived from note text. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
