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

import "math/rand"

/* -------------------------------------------------------------------------- */

// Sampled read fragments for one search direction. The slice index is the
// read identifier that the approximate counter reports, it must stay
// stable for the lifetime of the direction's pass.
type SampleSet [][]byte

/* -------------------------------------------------------------------------- */

// SampleReads draws up to n reads from the collection, in the order of a
// random permutation, and cuts each one down to the first (fromEnd is
// false) or last (fromEnd is true) length symbols. Reads shorter than the
// requested length are clamped, not skipped.
func SampleReads(reads ReadSet, n, length int, fromEnd bool, rng *rand.Rand, logger Logger) SampleSet {

  if fromEnd {
    logger.Printf(1, "Sampling the ends of reads")
  } else {
    logger.Printf(1, "Sampling the start of reads")
  }
  if n > reads.Len() {
    logger.Warningf("Sequence set too small for the requested sample size (%d/%d)", reads.Len(), n)
    logger.Warningf("The whole set will be used.")
    n = reads.Len()
  }
  sample  := make(SampleSet, 0, n)
  clamped := 0

  for _, id := range rng.Perm(reads.Len()) {
    if len(sample) == n {
      break
    }
    seq := reads.Sequences[id]
    l   := length
    if l > len(seq) {
      l = len(seq)
      clamped++
    }
    if fromEnd {
      sample = append(sample, seq[len(seq)-l:])
    } else {
      sample = append(sample, seq[0:l])
    }
  }
  if clamped > 0 {
    logger.Warningf("%d sampled reads are shorter than %d bases and were clamped", clamped, length)
  }
  logger.Printf(1, "Sampled %d sequences", len(sample))

  return sample
}
