// Package target resolves the URL the /x endpoint redirects to.
//
// Source is the resolution interface consumed by the HTTP controller.
// FileSource is the only implementation: it re-reads a small JSON
// document on every call, so edits to the file take effect without a
// restart and no cache invalidation exists.
package target
