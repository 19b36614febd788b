// This file is part of Famiemu.
//
// Famiemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famiemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famiemu.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/famiemu/famiemu/paths"
	"github.com/famiemu/famiemu/test"
)

func TestResourcePath(t *testing.T) {
	pth := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, strings.HasSuffix(pth, filepath.Join("famiemu", "foo", "bar", "baz")))

	pth = paths.ResourcePath("", "")
	test.ExpectSuccess(t, strings.HasSuffix(pth, "famiemu"))
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^perform_prog_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("perform", "prog")))

	re = regexp.MustCompile(`^perform_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("perform", " ")))
}

func TestShortName(t *testing.T) {
	test.ExpectEquality(t, paths.ShortName("/tmp/roms/nestest.bin"), "nestest")
	test.ExpectEquality(t, paths.ShortName("prog"), "prog")
	test.ExpectEquality(t, paths.ShortName("a.b.c"), "a.b")
}
