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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/runner"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Leadtime is the amount of time the program runs before measurement begins.
var Leadtime = 2 * time.Second

// the number of instructions between checks of the timer. checking the
// timer every instruction is relatively expensive.
const performanceBrake = 1000

// Check the performance of the interpreter using the supplied runner. The
// program must already have been loaded.
//
// The program will run for the specified duration after the lead time and
// will create a cpu, memory profile, a trace (or a combination of those) as
// defined by the Profile argument. Profile files are named after
// filenameHeader. The clock argument is the clock rate of
// the CPU in MHz and is used to calculate the accuracy of the result.
func Check(output io.Writer, profile Profile, filenameHeader string, r *runner.Runner, duration string, clock float64) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	mc := r.CPU()
	startCycles := mc.Cycles()
	startSteps := r.Steps()

	run := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)
		time.AfterFunc(Leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		brake := 0
		for {
			if _, err := r.Step(); err != nil {
				return err
			}

			brake++
			if brake < performanceBrake {
				continue
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startCycles = mc.Cycles()
				startSteps = r.Steps()
			default:
			}
		}
	}

	err = RunProfiler(profile, filenameHeader, run)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(ProfileError, err)
	}

	cycles := mc.Cycles() - startCycles
	steps := r.Steps() - startSteps
	mhz, accuracy := CalcMHz(cycles, dur.Seconds(), clock)

	fmt.Fprintf(output, "%.2f MHz (%d cycles, %d instructions in %.2f seconds) %.1f%%\n",
		mhz, cycles, steps, dur.Seconds(), accuracy)

	return nil
}
