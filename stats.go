package fheregex

import "github.com/coregx/fheregex/engine"

// Stats reports the diagnostic counters from a single HasMatch call:
// how many primitive FHE ciphertext operations were performed, and how
// many were instead served from the structural cache. Informational
// only, per spec.md §4.4 — never part of the functional contract.
type Stats = engine.Stats
