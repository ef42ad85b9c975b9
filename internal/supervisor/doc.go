// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

/*
Package supervisor runs the long-lived parts of the server under a suture
supervision tree.

The tree has two layers below the root:

	postwright
	├── analysis-layer   periodic analysis snapshot refresher
	└── api-layer        HTTP server

A service that returns an error is restarted by its layer supervisor with
suture's failure decay and backoff; a crash in the refresher never takes the
HTTP server down. Supervisor events are logged through sutureslog into the
zerolog stream.

Service wrappers live in the services subpackage.
*/
package supervisor
