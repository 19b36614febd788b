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

package scripting

import (
	"strings"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/logger"
	lua "github.com/yuin/gopher-lua"
)

// Error patterns returned by the scripting package.
const (
	ScriptError    = "scripting: %v"
	UnknownRequest = "scripting: on_step returned an unknown request (%s)"
)

// name of the function called between instructions.
const onStepFunction = "on_step"

// Machine is the view of the emulation available to the script.
type Machine interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)

	// Register returns the value of the named register. Returns false if the
	// name is not recognised
	Register(name string) (int, bool)

	// Flag returns the state of the named status flag. Returns false if the
	// name is not recognised
	Flag(name string) (bool, bool)

	Cycles() int
}

// Request is the value returned by the script between instructions.
type Request int

// List of valid Request values.
const (
	NoRequest Request = iota
	RequestNMI
	RequestIRQ
)

func (r Request) String() string {
	switch r {
	case NoRequest:
		return "none"
	case RequestNMI:
		return "nmi"
	case RequestIRQ:
		return "irq"
	}
	return "unknown"
}

// Script is a running Lua script.
type Script struct {
	L      *lua.LState
	m      Machine
	onStep lua.LValue
}

func newScript(m Machine) *Script {
	scr := &Script{
		L: lua.NewState(),
		m: m,
	}

	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("poke", scr.L.NewFunction(scr.poke))
	scr.L.SetGlobal("reg", scr.L.NewFunction(scr.reg))
	scr.L.SetGlobal("flag", scr.L.NewFunction(scr.flag))
	scr.L.SetGlobal("cycles", scr.L.NewFunction(scr.cycles))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))

	return scr
}

// Load the script in filename and run it.
func Load(m Machine, filename string) (*Script, error) {
	scr := newScript(m)
	if err := scr.L.DoFile(filename); err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	scr.onStep = scr.L.GetGlobal(onStepFunction)
	logger.Logf(logger.Allow, "scripting", "loaded %s", filename)
	return scr, nil
}

// LoadString runs the script in source. The name is used for logging only.
func LoadString(m Machine, name string, source string) (*Script, error) {
	scr := newScript(m)
	if err := scr.L.DoString(source); err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	scr.onStep = scr.L.GetGlobal(onStepFunction)
	logger.Logf(logger.Allow, "scripting", "loaded %s", name)
	return scr, nil
}

// Close the Lua state. The Script should not be used after calling Close().
func (scr *Script) Close() {
	scr.L.Close()
}

// HasOnStep returns true if the script defines the on_step function.
func (scr *Script) HasOnStep() bool {
	return scr.onStep.Type() == lua.LTFunction
}

// OnStep calls the on_step function of the script and returns the request
// it made. Returns NoRequest if the script has no on_step function.
func (scr *Script) OnStep() (Request, error) {
	if !scr.HasOnStep() {
		return NoRequest, nil
	}

	err := scr.L.CallByParam(lua.P{
		Fn:      scr.onStep,
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		return NoRequest, curated.Errorf(ScriptError, err)
	}

	ret := scr.L.Get(-1)
	scr.L.Pop(1)

	if ret == lua.LNil {
		return NoRequest, nil
	}

	switch strings.ToLower(ret.String()) {
	case "nmi":
		return RequestNMI, nil
	case "irq":
		return RequestIRQ, nil
	}

	return NoRequest, curated.Errorf(UnknownRequest, ret.String())
}

func (scr *Script) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	L.Push(lua.LNumber(scr.m.Peek(uint16(address))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := L.CheckInt(1)
	value := L.CheckInt(2)
	scr.m.Poke(uint16(address), uint8(value))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)
	v, ok := scr.m.Register(name)
	if !ok {
		L.ArgError(1, "unknown register")
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) flag(L *lua.LState) int {
	name := L.CheckString(1)
	v, ok := scr.m.Flag(name)
	if !ok {
		L.ArgError(1, "unknown flag")
		return 0
	}
	L.Push(lua.LBool(v))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Cycles()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "lua", L.CheckString(1))
	return 0
}
