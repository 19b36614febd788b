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

package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".famiemu"

// ConfigFile is the name of the configuration file in the resource directory.
const ConfigFile = "famiemu.yaml"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the resource directory. The path is not checked for
// existence.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

func getBasePath() string {
	if fi, err := os.Stat(baseResourcePath); err == nil && fi.IsDir() {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}

// DefaultConfigFile returns the path to the configuration file in the
// resource directory. Returns the empty string if the file does not exist.
func DefaultConfigFile() string {
	pth := ResourcePath(ConfigFile)
	if fi, err := os.Stat(pth); err == nil && !fi.IsDir() {
		return pth
	}
	return ""
}
