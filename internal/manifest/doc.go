// Package manifest edits package.json manifests without disturbing them.
//
// A Document keeps the parsed key order, so rewriting a manifest after
// changing one dependency version leaves every other key, value and its
// position untouched. Output is tab indented, matching the bundled template.
package manifest
