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

func TestMostFrequent(test *testing.T) {
  table := KmerCountTable{0: 5, 1: 3, 2: 3, 3: 1}

  list := MostFrequent(table, 2)
  if len(list) != 2 {
    test.Error("test failed")
  }
  if list[0].Count != 5 || list[1].Count != 3 {
    test.Error("test failed")
  }
  // every emitted count >= every excluded count
  if list[len(list)-1].Count < 1 {
    test.Error("test failed")
  }
  // limit larger than the table
  if len(MostFrequent(table, 10)) != 4 {
    test.Error("test failed")
  }
}

func TestMostFrequentTieBreak(test *testing.T) {
  table := KmerCountTable{7: 3, 2: 3, 5: 3}

  list := MostFrequent(table, 3)
  if list[0].Kmer != 2 || list[1].Kmer != 5 || list[2].Kmer != 7 {
    test.Error("test failed")
  }
}

func TestSolidKmers(test *testing.T) {
  table := KmerCountTable{0: 5, 1: 3, 2: 3, 3: 1}

  list := SolidKmers(table, 3)
  if len(list) != 3 {
    test.Error("test failed")
  }
  for i := 0; i < len(list); i++ {
    if list[i].Count < 3 {
      test.Error("test failed")
    }
  }
  if len(SolidKmers(table, 10)) != 0 {
    test.Error("test failed")
  }
  if len(SolidKmers(table, 1)) != 4 {
    test.Error("test failed")
  }
}

func TestSelectorsPreserveTable(test *testing.T) {
  table := KmerCountTable{0: 5, 1: 3}

  MostFrequent(table, 1)
  SolidKmers(table, 4)
  if table[0] != 5 || table[1] != 3 || len(table) != 2 {
    test.Error("test failed")
  }
}
