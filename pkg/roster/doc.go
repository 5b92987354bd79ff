// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package roster resolves a loaded project into the ordered collection of
sample records downstream tooling consumes.

Build reads the annotation table (one sample per row, file order), folds
subsample rows into multi-valued attributes, then runs the modifier
pipeline in its fixed order: append, duplicate, derive, imply, remove.
Rosters are rebuilt wholesale on every Build call; per-attribute failures
degrade that one value and surface as Diagnostics instead of aborting.
*/
package roster
