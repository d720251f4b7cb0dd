// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullMerkleTree - compute all levels of a merkle tree from a set of
// leaf digests
//
// structure is:
//
//  1. N * leaf digests
//  2. level 1..m digests
//  3. merkle root digest (last element)
//
// an odd node at the end of a level is promoted unchanged to the
// next level; it is never hashed with itself
func FullMerkleTree(leaves []Digest) []Digest {

	leafCount := len(leaves)
	if 0 == leafCount {
		return nil
	}

	// compute length of leaves + all tree levels including root
	totalLength := leafCount
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		totalLength += (n + 1) / 2
	}

	tree := make([]Digest, totalLength)
	copy(tree, leaves)

	n := leafCount // next write position
	j := 0         // start of current level
	for workLength := leafCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			if i+1 == workLength {
				tree[n] = tree[j+i] // promote odd node
			} else {
				tree[n] = combine(tree[j+i], tree[j+i+1])
			}
			n += 1
		}
		j += workLength
	}
	return tree
}

// MerkleRoot - the root of the tree built by FullMerkleTree
//
// an empty set of leaves gives the all-zero digest
func MerkleRoot(leaves []Digest) Digest {
	tree := FullMerkleTree(leaves)
	if 0 == len(tree) {
		return Digest{}
	}
	return tree[len(tree)-1]
}

// hash the concatenation of two nodes
func combine(left Digest, right Digest) Digest {
	b := make([]byte, 0, 2*DigestLength)
	b = append(b, left[:]...)
	b = append(b, right[:]...)
	return NewDigest(b)
}
