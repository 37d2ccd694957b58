// Package memory provides an in-memory record store consuming the partition
// keys computed by the blazejob package.
//
// The store mirrors how a storage-backed execution engine uses partition
// keys: records are grouped by concrete type name, their processing state
// is held in the storage-native representation produced by the key's state
// value mapper, and due records are fetched per numeric partition. It is
// intended for tests, local development and deployments that do not need
// durable job storage.
package memory
