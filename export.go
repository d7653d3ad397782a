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

import "bytes"
import "fmt"
import "io"

/* -------------------------------------------------------------------------- */

func WriteCounts(writer io.Writer, list CandidateList, k int) error {
  for i := 0; i < len(list); i++ {
    if _, err := fmt.Fprintf(writer, "%s\t%d\n", DecodeKmer(list[i].Kmer, k), list[i].Count); err != nil {
      return err
    }
  }
  return nil
}

// ExportCounts writes a candidate list as a tab separated table, one
// `<k-mer> <count>' row per candidate, rows in list order. The file is
// only committed once the whole table has been rendered.
func ExportCounts(list CandidateList, k int, filename string) error {
  var buffer bytes.Buffer

  if err := WriteCounts(&buffer, list, k); err != nil {
    return err
  }
  return writeFile(filename, &buffer)
}
