// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the kbsync operator command line tool.
//
// It wires configuration, storage, the knowledge-base adapter and services
// into a short-lived runtime and exposes them as cobra commands: schema
// migration, one-off synchronization, bulk reconciliation with progress
// output and synchronous workflow runs.
package client
