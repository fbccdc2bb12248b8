// Package store defines the persistence interfaces and shared database
// abstractions (transaction helper, sentinel errors) used by the storage
// implementations under internal/platform.
package store
