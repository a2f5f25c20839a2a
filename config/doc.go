// Package config assembles the whitelabel brand configuration.
//
// A [Config] is produced by merging three layers in fixed precedence order
// (earlier layers win, empty fields fall through to the next layer):
//  1. Explicit caller options
//  2. NEXT_PUBLIC_* environment variables
//  3. Built-in defaults
//
// The main entry point is [New], which never fails: absent or malformed
// inputs degrade to defaults silently, so there is no error path to handle
// at startup. The returned Config is immutable by convention; nothing in
// this module mutates it after construction and concurrent readers are safe.
package config
