// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation
of pep.

From top-down (http://www.catb.org/~esr/writings/taoup/html/ch04s03.html),
pep code is layered in this way:

# Entry Point

	./cmd/pep   // the command-line tool

# Commands

The most commonly used command is "resolve"; it is also the default.

	pkg/cmd
	pkg/cmd/resolve
	pkg/cmd/ui

# Project Configuration

A descriptor file is loaded into an order-preserving config tree, imports
shallow-merged under it, and amendments held aside as overlays that can be
activated into a fresh view of the tree.

	pkg/projconf
	pkg/orderedmap

# Resolution

The roster builder seeds one sample per annotation row, folds subsample
rows into multi-valued attributes, then runs the modifier pipeline
(append, duplicate, derive, imply, remove). Derive leans on the
substitution engine.

	pkg/roster
	pkg/sampletable
	pkg/expand

projconf and roster form the library surface: everything a downstream
consumer needs is reachable from projconf.Load and roster.Build.
*/
package pkg
