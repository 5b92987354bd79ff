// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package expand implements {name} placeholder substitution for data-source
templates and metadata paths.

Tokens resolve against an ordered list of scopes (callers pass sample
attributes first, then project scalars, then environment variables); the
first scope that knows the name wins. ExpandPath additionally expands
filesystem wildcards in the substituted result.
*/
package expand
