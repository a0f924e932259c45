// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It loads the known documents, runs the connectivity probe and the outbox
// sync worker in the background, and hands the terminal to the editor until
// the user quits. Pending saves are flushed on the way out.
package client
