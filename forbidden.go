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

import "bufio"
import "fmt"
import "io"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Set of k-mers excluded from counting, e.g. motifs known to belong to
// the organism rather than to library preparation. Loaded once and shared
// read-only by both search directions.
type ForbiddenKmerSet map[uint64]struct{}

/* -------------------------------------------------------------------------- */

func (obj ForbiddenKmerSet) Has(kmer uint64) bool {
  _, ok := obj[kmer]
  return ok
}

/* -------------------------------------------------------------------------- */

// ReadForbiddenKmers parses a newline-delimited list of literal DNA
// strings of length k and encodes each entry.
func ReadForbiddenKmers(reader io.Reader, k int) (ForbiddenKmerSet, error) {
  set     := make(ForbiddenKmerSet)
  scanner := bufio.NewScanner(reader)

  for scanner.Scan() {
    line := strings.TrimSpace(scanner.Text())
    if len(line) == 0 {
      continue
    }
    if len(line) != k {
      return nil, fmt.Errorf("ReadForbiddenKmers(): `%s' is not a %d-mer", line, k)
    }
    if value, err := EncodeKmer([]byte(line)); err != nil {
      return nil, err
    } else {
      set[value] = struct{}{}
    }
  }
  return set, scanner.Err()
}

// ImportForbiddenKmers loads a forbidden k-mer file. A file that cannot
// be opened is a configuration error, the caller is expected to abort.
func ImportForbiddenKmers(filename string, k int) (ForbiddenKmerSet, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  return ReadForbiddenKmers(f, k)
}
