// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"
)

// Diagnostic records one degraded value: the build continued, but the
// named attribute was left in a fallback state. Diagnostics are the only
// channel for non-fatal resolution problems; values are never dropped
// silently.
type Diagnostic struct {
	Sample    string
	Attribute string
	Msg       string
}

func (d Diagnostic) String() string {
	switch {
	case d.Sample == "":
		return d.Msg
	case d.Attribute == "":
		return fmt.Sprintf("sample '%s': %s", d.Sample, d.Msg)
	default:
		return fmt.Sprintf("sample '%s' attribute '%s': %s", d.Sample, d.Attribute, d.Msg)
	}
}
