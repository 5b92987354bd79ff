// Copyright 2025 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user output (typically, a tty
device). Resolution diagnostics are reported through Warnf so they land on
stderr and never mix with exported tables on stdout.
*/
package ui
