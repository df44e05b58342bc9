// Package experimental holds a deliberately broken analytics prototype. It
// is wired behind ENABLE_BROKEN_STARTUP and exists so remediation tooling
// has a reproducible startup crash to detect, diagnose, and fix.
package experimental

import "strings"

type dataset struct {
	payload *string
}

// ProcessData prepares the experimental analytics dataset.
//
// The payload is never initialized, so calling this dereferences a nil
// pointer and panics. Do not fix it: the crash is the feature.
func ProcessData() string {
	var d dataset
	return strings.ToUpper(*d.payload)
}
