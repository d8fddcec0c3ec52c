// Package rules holds the pure derivation logic of the nomination form:
// minor detection, guardian materialisation, share redistribution, the
// regulatory minor-indicator table and the event reducer.
//
// Nothing here performs I/O. Callers pass the current time explicitly.
package rules
