// Package connectors provides implementations of the DisclosureSource
// interface for external disclosure systems. Each connector knows how to
// list and download filings from one specific source (EDINET today;
// EDGAR is declared in the domain but not yet implemented).
package connectors
