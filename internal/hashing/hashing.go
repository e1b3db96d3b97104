// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"github.com/lgbarn/fenboard/internal/chess"
)

// DuplicateChecker is the interface shared by the plain and thread-safe detectors.
type DuplicateChecker interface {
	CheckAndAdd(pos chess.Position) bool
	DuplicateCount() int
	UniqueCount() int
}

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable maps Zobrist hashes to the positions seen with that hash
	hashTable map[uint64][]chess.Position
	// useExactMatch also requires equal move clocks
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits the number of stored positions (0 = unlimited)
	maxCapacity int
	// stored is the number of positions held in hashTable
	stored int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]chess.Position),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a position has been seen and records it otherwise.
// Returns true if the position is a duplicate. Once the detector is full new
// positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(pos chess.Position) bool {
	hash := GenerateZobristHash(pos)

	for _, seen := range d.hashTable[hash] {
		if d.positionsMatch(pos, seen) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[hash] = append(d.hashTable[hash], pos)
	d.stored++
	return false
}

// positionsMatch compares two positions that share a hash.
func (d *DuplicateDetector) positionsMatch(a, b chess.Position) bool {
	if d.useExactMatch {
		return a == b
	}
	return a.Bitboards == b.Bitboards &&
		a.ActiveColour == b.ActiveColour &&
		a.Castling == b.Castling &&
		a.EnPassant == b.EnPassant
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the capacity limit has been reached.
// Always false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]chess.Position)
	d.duplicateCount = 0
	d.stored = 0
}
