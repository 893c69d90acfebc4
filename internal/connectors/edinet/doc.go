// Package edinet implements the DisclosureSource interface for EDINET,
// Japan's electronic disclosure system for securities filings.
//
// The EDINET v2 API exposes filings as a listing-by-day feed: one call
// returns every document disclosed on one calendar date. The connector
// partitions a search window into per-day listing calls, maps each raw
// record into the domain model, and downloads filing archives by
// upstream document id and format code.
//
// EDINET assigns one docID per filing regardless of format, so the
// connector encodes the target format into the composite document id to
// keep the XBRL, PDF and CSV variants of one filing individually
// addressable.
package edinet
