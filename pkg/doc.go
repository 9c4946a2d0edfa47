// Package pkg holds the libraries behind the dominoes command.
//
// # Overview
//
// Dominoes enumerates every tiling of a 2×N board with vertical dominoes
// and stacked horizontal pairs, then draws each tiling as a labelled card.
//
//  1. [tiling] - Tokens, tilings and the memoized enumerator
//  2. [board] - Cell layout derived from a token sequence
//  3. [render] - Cards plus text, SVG, JSON and Graphviz renderers
//  4. [gallery] - Validation, pacing and cached rendering for front ends
//  5. [cache], [errors], [observability], [buildinfo] - Supporting packages
//
// # Architecture
//
//	width input
//	     ↓
//	[gallery] (parse, bound, busy guard, delay)
//	     ↓
//	[tiling] (memoized enumeration)
//	     ↓
//	[board] + [render] (cards, layouts, output formats)
//	     ↓
//	[cache] (in-process artifacts)
//
// # Quick Start
//
//	for _, t := range tiling.Enumerate(4) {
//	    fmt.Println(t) // VVVV, VVH, VHV, HVV, HH
//	}
//
// [tiling]: github.com/matzehuels/dominoes/pkg/tiling
// [board]: github.com/matzehuels/dominoes/pkg/board
// [render]: github.com/matzehuels/dominoes/pkg/render
// [gallery]: github.com/matzehuels/dominoes/pkg/gallery
// [cache]: github.com/matzehuels/dominoes/pkg/cache
// [errors]: github.com/matzehuels/dominoes/pkg/errors
// [observability]: github.com/matzehuels/dominoes/pkg/observability
// [buildinfo]: github.com/matzehuels/dominoes/pkg/buildinfo
package pkg
