// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor runs the long-lived services of the server under a
suture v4 supervisor tree.

	cinematch (root)
	├── maintenance-layer   cache janitor
	└── api-layer           HTTP server

A service that returns an error is restarted with suture's failure
backoff. A crash in the maintenance layer never stops the API layer.
Supervisor events are logged through sutureslog, fed by the zerolog
slog adapter from the logging package.
*/
package supervisor
