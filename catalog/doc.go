// SPDX-License-Identifier: MIT

// Package catalog lists the inputs a scene may reference: audio sources under
// a folder tree and measured reverb sets.
//
// Listings are sorted so that a seeded scene picks the same files on every
// machine. Nothing is cached: every call reads the filesystem again.
//
// Measured reverb layout:
//
//	<root>/<name>/Soundfield/LsPos.txt   tab-separated x y z, one loudspeaker per line
//	<root>/<name>/Soundfield/ls1.wav ... lsN.wav
//	<root>/<name>/meta.yaml              optional, e.g. "ambisonics_order: 1"
//
// Other containers (SOFA files, remote banks) plug in through the Reverbs
// interface.
package catalog
