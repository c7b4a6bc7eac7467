// Package store is the client's durable key-value store: the local
// equivalent of browser storage. Values survive restarts and are removed
// only by logout or by the user deleting the database file.
//
// The session is kept in flattened form, one key per field (see the Key
// constants), next to the bearer token. SaveSession writes all of them in one
// SQL transaction so a crash can never leave half a session behind.
package store
