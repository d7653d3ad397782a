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

import "fmt"

/* -------------------------------------------------------------------------- */

const MinKmerSize =  2
const MaxKmerSize = 32

/* -------------------------------------------------------------------------- */

// KmerMask returns the bit mask covering the 2k low bits of an encoded
// k-mer, i.e. 4^k - 1.
func KmerMask(k int) uint64 {
  return (uint64(1) << (2*uint(k))) - 1
}

// EncodeKmer packs a DNA string into an unsigned integer, two bits per
// symbol, most significant symbol first.
func EncodeKmer(seq []byte) (uint64, error) {
  al := NucleotideAlphabet{}
  if len(seq) > MaxKmerSize {
    return 0, fmt.Errorf("EncodeKmer(): sequence length %d exceeds %d", len(seq), MaxKmerSize)
  }
  value := uint64(0)
  for i := 0; i < len(seq); i++ {
    if c, err := al.Code(seq[i]); err != nil {
      return 0, err
    } else {
      value = value << 2 | uint64(c)
    }
  }
  return value, nil
}

// DecodeKmer is the inverse of EncodeKmer for any k <= 32 and any
// value < 4^k.
func DecodeKmer(value uint64, k int) []byte {
  al  := NucleotideAlphabet{}
  seq := make([]byte, k)
  for i := k-1; i >= 0; i-- {
    c, err := al.Decode(byte(value & 3))
    if err != nil {
      panic(err)
    }
    seq[i] = c
    value >>= 2
  }
  return seq
}
