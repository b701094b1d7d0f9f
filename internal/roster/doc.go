// Package roster resolves the people mentioned in an episode.
//
// The engine runs in three phases. A collector gathers raw candidate
// names from every text surface of the episode (on-screen OCR lines,
// title, description, transcript), a validator scores each candidate
// against independent corroboration criteria and canonises the spelling
// of the survivors, and a bio synthesizer produces a short Portuguese
// descriptor for each accepted person. Collection and scoring are pure
// given their inputs; only corroboration and bio synthesis reach the
// network, through the Searcher interface.
package roster
