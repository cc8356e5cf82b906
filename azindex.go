// Package azindex holds global definitions for the report indexer.
package azindex

// Version is the processor version that gets stamped into every index document.
// It is set during the build process by our mage tasks.
var Version = "unset"
