// Package cli provides the interactive ShopLens terminal dashboard.
//
// It wires configuration, the local device database, the auth facade, and
// an interactive REPL over the public analytics APIs. Typical flow: restore
// a remembered session at startup, prompt for credentials when needed, and
// execute dashboard commands. Every accepted command counts as activity for
// the inactivity watchdog.
//
// Key features:
//   - Register / Login / Logout with an optional remembered session
//   - Exchange rates and currency conversion
//   - Customer segments, KPIs, and a synthetic sales trend
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
