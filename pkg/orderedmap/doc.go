// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a string-keyed map that maintains key insertion
order (unlike the native Go map).

Project descriptors are resolved into trees of these maps; preserving the
author's key order is what keeps amendment listings, imply-rule evaluation
and exported column order deterministic across runs.
*/
package orderedmap
