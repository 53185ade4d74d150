// Package harness runs conformance scenarios for the merge and join views.
//
// A scenario is a YAML document naming the two sorted inputs, the view to
// produce, the comparator, and assertions over the output. Scenario output
// can additionally be compared against golden files, which serve as the
// source of truth for expected interleavings.
//
// Scenarios keep the behavioral contract legible outside Go source: the
// testdata directory documents, in data, exactly how the engine aligns
// matched keys, fans out duplicates, and drains an exhausted side.
package harness
