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

// Exact k-mer occurrence counts keyed by the encoded k-mer. Built in a
// single pass over one direction's sample, then consumed read-only.
type KmerCountTable map[uint64]int

/* -------------------------------------------------------------------------- */

// CountKmers slides a window of width k across every fragment,
// maintaining the running encoded k-mer with shift-and-mask. Low
// complexity and forbidden k-mers are dropped silently. Windows covering
// a symbol outside the alphabet restart the rolling encoder, so no count
// is ever derived from an invalid symbol.
func CountKmers(sample SampleSet, k int, threshold float64, forbidden ForbiddenKmerSet) KmerCountTable {
  al    := NucleotideAlphabet{}
  count := make(KmerCountTable)
  mask  := KmerMask(k)

  for _, seq := range sample {
    n   := uint64(0)
    run := 0
    for i := 0; i < len(seq); i++ {
      c, err := al.Code(seq[i])
      if err != nil {
        run = 0
        continue
      }
      n = (n << 2 & mask) | uint64(c)
      if run++; run < k {
        continue
      }
      if LowComplexity(n, k, threshold) {
        continue
      }
      if forbidden != nil && forbidden.Has(n) {
        continue
      }
      count[n] += 1
    }
  }
  return count
}
