// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console runtime.
//
// It wires the remote config store, the client panels and the terminal UI
// into a single process lifecycle.
package client
