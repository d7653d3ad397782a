/* Copyright (C) 2020 Quentin Bonenfant
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package adaptfinder

/* -------------------------------------------------------------------------- */

import "testing"

/* -------------------------------------------------------------------------- */

func TestErrorCountLowerBound(test *testing.T) {
  // the candidate occurs literally in three fragments; exact matches are
  // a subset of the tolerated ones, so the corrected count is at least 3
  sample := SampleSet{
    []byte("TTACGTTTTTTT"),
    []byte("GGGGACGTGGGG"),
    []byte("CCCCCCCCACGT"),
    []byte("GGGGGGGGGGGG")}

  kmer, _ := EncodeKmer([]byte("ACGT"))
  candidates := CandidateList{{kmer, 3}}

  count := ErrorCount(sample, candidates, NewEditDistanceIndex(sample), 4, 2, Logger{})
  if count[kmer] < 3 {
    test.Error("test failed")
  }
}

func TestErrorCountTierOverlap(test *testing.T) {
  // a read matching at several error tiers contributes once per tier,
  // not once per read: around an exact occurrence the search also
  // realizes occurrences at one and two edits, so a single read yields a
  // corrected count of 3. Deduplicating across tiers would yield 1.
  sample := SampleSet{[]byte("TTTTACGTTTTT")}

  kmer, _ := EncodeKmer([]byte("ACGT"))
  candidates := CandidateList{{kmer, 1}}

  count := ErrorCount(sample, candidates, NewEditDistanceIndex(sample), 4, 1, Logger{})
  if count[kmer] != MaxErrors+1 {
    test.Error("test failed")
  }
}

func TestErrorCountIdempotentOccurrences(test *testing.T) {
  // two exact occurrences in one read still set a single tier bit
  sample := SampleSet{[]byte("ACGTTTTTTTTTTTTTTTTTACGT")}

  kmer, _ := EncodeKmer([]byte("ACGT"))
  candidates := CandidateList{{kmer, 2}}

  count := ErrorCount(sample, candidates, NewEditDistanceIndex(sample), 4, 1, Logger{})
  if count[kmer] > MaxErrors+1 {
    test.Error("test failed")
  }
}

func TestErrorCountParallelStable(test *testing.T) {
  sample := SampleSet{
    []byte("TTACGTTTTTTT"),
    []byte("GGGGACGTGGGG"),
    []byte("CCCCCCCCACGT")}

  k1, _ := EncodeKmer([]byte("ACGT"))
  k2, _ := EncodeKmer([]byte("TTTT"))
  k3, _ := EncodeKmer([]byte("GGGG"))
  candidates := CandidateList{{k1, 3}, {k2, 1}, {k3, 2}}
  index := NewEditDistanceIndex(sample)

  a := ErrorCount(sample, candidates, index, 4, 1, Logger{})
  b := ErrorCount(sample, candidates, index, 4, 4, Logger{})
  for kmer, v := range a {
    if b[kmer] != v {
      test.Error("test failed")
    }
  }
}
