// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services and the background
// badge refresh job into a single process lifecycle.
package client
