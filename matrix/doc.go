// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major dense matrix used for Ambisonics
// encoding and gain matrices (rows = directions or events, columns = ACN
// channels).
//
// Public accessors never panic on user input: At and Set return sentinel
// errors, and all shape checks go through validators.go.
package matrix
