// Package http exposes a single fundflow conversation over JSON endpoints.
//
// The engine renders into a memory.Recorder. Each request runs under one
// mutex, since the engine drives exactly one conversation at a time, and
// answers with the resulting view of the transcript and pending actions.
package http
