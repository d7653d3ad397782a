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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestReadForbiddenKmers(test *testing.T) {
  set, err := ReadForbiddenKmers(strings.NewReader("ACGT\nTTTT\n\n"), 4)
  if err != nil {
    test.Fatal(err)
  }
  if len(set) != 2 {
    test.Error("test failed")
  }
  kmer, _ := EncodeKmer([]byte("ACGT"))
  if !set.Has(kmer) {
    test.Error("test failed")
  }
  other, _ := EncodeKmer([]byte("GGGG"))
  if set.Has(other) {
    test.Error("test failed")
  }
}

func TestReadForbiddenKmersWrongLength(test *testing.T) {
  if _, err := ReadForbiddenKmers(strings.NewReader("ACGTA\n"), 4); err == nil {
    test.Error("test failed")
  }
}

func TestReadForbiddenKmersInvalidAlphabet(test *testing.T) {
  if _, err := ReadForbiddenKmers(strings.NewReader("ACGN\n"), 4); err == nil {
    test.Error("test failed")
  }
}

func TestImportForbiddenKmersMissing(test *testing.T) {
  if _, err := ImportForbiddenKmers("does-not-exist.txt", 4); err == nil {
    test.Error("test failed")
  }
}
