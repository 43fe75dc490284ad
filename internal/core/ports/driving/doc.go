// Package driving defines the inbound port interfaces through which the
// CLI, MCP, and TUI adapters drive the notes core.
package driving
