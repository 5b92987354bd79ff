// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package projconf loads PEP project descriptors.

A descriptor is a YAML mapping with `metadata` (table locations),
`data_sources` (named URI templates), `sample_modifiers` (append, remove,
duplicate, derive, imply), `amendments`/`subprojects` (named partial
overrides) and `imports` (shallow-merged parent descriptors).

Loading produces an immutable Project. Amendment activation is a pure
function: it deep-merges the named overlay onto a fresh copy of the pristine
base tree and returns a new Project, so switching between amendments can
never observe state left behind by a previous activation.
*/
package projconf
