// Package filesystem routes all disk access through a swappable afero backend.
//
// Production code runs against the real OS filesystem; tests swap in an
// in-memory backend so config, logs and the session cache never touch the
// host disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the currently active filesystem backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches back to the native operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs swaps in a volatile in-memory filesystem. Tests call this from
// init so nothing they write survives the process.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
