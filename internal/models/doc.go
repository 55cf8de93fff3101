// Package models defines the wire types exchanged with the degrees-of-separation search API.
//
// # Search Lifecycle
//
//  1. [SearchRequest] is posted to start a search and answered with [SearchStarted].
//  2. [ProgressUpdate] is polled until its [Status] is terminal.
//  3. [ResultEnvelope] carries the final [SearchResult].
//
// # Invariants
//
// A found [SearchResult] lists Degrees+1 artists in PathNames, ordered from the start artist to the end artist.
// [SearchResult.Validate] enforces this.
//
// The result endpoint may answer a completed search with a null result when no connection exists;
// [ResultEnvelope.Resolve] turns that into an explicit not-found result for the submitted pair.
package models
