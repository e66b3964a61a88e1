// Package configmodel implements the merge-and-derive core of the admin
// configuration console.
//
// It is pure: no I/O, no logging, no shared state. The functions are
//   - [DefaultIDCard] and [DefaultNotifications]: literal defaults, fresh on every call
//   - [Merge]: shallow override of defaults by the keys present in a remote payload
//   - [ApplyPatch]: copy-on-write replacement of one leaf addressed by a dot path
//   - [ProjectIDCard] and [ProjectNotifications]: read-only statistics
//
// Merge and ApplyPatch work on the JSON form of a model, so keys the Go types
// do not know travel through unchanged in the models' Extra maps.
package configmodel
