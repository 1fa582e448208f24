// Package talmud turns curated RAG answers into the data file consumed by the
// Talmud-style front-end. It looks up a topic's query in a tab-separated topic
// list, looks up the curated response for the same topic in a JSON-lines file,
// renders the response's citations as links, and writes a single JSON document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, htmltomarkdown/, slog/).
package talmud
