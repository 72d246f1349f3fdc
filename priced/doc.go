// Package priced implements priced DBMs: a zone paired with an affine
// cost function c(x) = c0 + Σ ri·(xi - v0i), per spec.md §4.7. The rate
// vector r (r[0] == 0) and offset cost c0 travel alongside the zone; the
// offset vertex v0 is not stored but re-derived from the zone's lower
// bounds. They are kept consistent by every operation that reshapes the
// zone: delay, reset, constrain and extrapolation.
//
// PricedFederation parallels fed.Federation with cost-aware zones: its
// Infimum is the pointwise minimum cost over the union, while Union stays
// cost-blind (zones are never merged across different rate vectors).
package priced
