// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version of the pep binary. Overridden via ldflags at release time.
var Version = "0.1.0"

// DescriptorVersion is the newest `pep_version` this engine understands.
const DescriptorVersion = "2.1.0"
