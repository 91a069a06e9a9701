// Package wetsplit splits Dutch government publications (official gazettes,
// parliamentary papers, consolidated legislation, court decisions) into
// ordered text fragments suitable for indexing and search.
//
// A document is offered to every registered Extractor. Each one says whether
// it accepts the bytes, how suitable it is (lower is better), and only then
// produces fragments from the state its suitableness check computed.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, goquery/, pdfcpu/).
package wetsplit
