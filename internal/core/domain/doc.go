// Package domain contains the core types for speaker-notes synchronisation:
// notes snapshots, change classification, apply outcomes, and the text
// sanitiser shared by every component.
package domain
