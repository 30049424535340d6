// Package clone provides the deep-copy helper used by the tap/inspect hooks
// so that side-effect callbacks can never mutate a wrapped payload through
// shared references.
package clone

import "github.com/mohae/deepcopy"

// Value returns a deep copy of v. Values that cannot be copied (nil interface
// payloads, unexported-only structs the copier gives up on) are returned as-is;
// a best-effort copy is still strictly safer than handing out the original.
func Value[T any](v T) T {
	c, ok := deepcopy.Copy(v).(T)
	if !ok {
		return v
	}
	return c
}
