// Package memory holds in-memory repositories used by tests and local
// experiments. Each repository reports fs.ErrNotExist from Load until
// it has been seeded or saved once, mirroring how the csv-backed
// repositories behave before their table file exists.
package memory
