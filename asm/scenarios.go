package asm

// Scenario names, used both by cmd/basm's "scenario" subcommand and by
// cpu package tests, so the end-to-end test programs are runnable
// artifacts rather than fixtures duplicated between test files and CLI.
const (
	ScenarioImmediateAdd = "s1-immediate-add"
	ScenarioSubtraction  = "s2-subtraction"
	ScenarioR0Discard    = "s3-r0-discard"
	ScenarioMemoryRound  = "s4-memory-roundtrip"
	ScenarioBranch       = "s5-branch"
	ScenarioCallRet      = "s6-call-ret"
)

// Scenarios lists every known scenario name, in a stable order.
var Scenarios = []string{
	ScenarioImmediateAdd,
	ScenarioSubtraction,
	ScenarioR0Discard,
	ScenarioMemoryRound,
	ScenarioBranch,
	ScenarioCallRet,
}

// Scenario returns the Builder for one of the named end-to-end test
// programs from the specification's scenario catalog.
func Scenario(name string) (*Builder, bool) {
	switch name {
	case ScenarioImmediateAdd:
		return scenarioImmediateAdd(), true
	case ScenarioSubtraction:
		return scenarioSubtraction(), true
	case ScenarioR0Discard:
		return scenarioR0Discard(), true
	case ScenarioMemoryRound:
		return scenarioMemoryRound(), true
	case ScenarioBranch:
		return scenarioBranch(), true
	case ScenarioCallRet:
		return scenarioCallRet(), true
	default:
		return nil, false
	}
}

// scenarioImmediateAdd: R1=5, R2=10, R3=R1+R2=15.
func scenarioImmediateAdd() *Builder {
	return NewBuilder().
		AddI(1, 0, 5).
		AddI(2, 0, 10).
		Add(3, 1, 2).
		Halt()
}

// scenarioSubtraction: R1=7, R2=20, R3=R1-R2=-13.
func scenarioSubtraction() *Builder {
	return NewBuilder().
		AddI(1, 0, 7).
		AddI(2, 0, 20).
		Sub(3, 1, 2).
		Halt()
}

// scenarioR0Discard: write to R0 is discarded.
func scenarioR0Discard() *Builder {
	return NewBuilder().
		AddI(0, 0, 42).
		Halt()
}

// scenarioMemoryRound: store 777 to Mem[R1+0], load it back into R3.
func scenarioMemoryRound() *Builder {
	return NewBuilder().
		AddI(1, 0, 100). // base
		AddI(2, 0, 777). // data
		Stw(1, 0, 2).
		Ldw(3, 1, 0).
		Halt()
}

// scenarioBranch: BRZ taken skips the next instruction.
func scenarioBranch() *Builder {
	return NewBuilder().
		AddI(1, 0, 0).
		Brz(1, "after").
		AddI(2, 0, 99). // skipped
		Label("after").
		AddI(3, 0, 7).
		Halt()
}

// scenarioCallRet: CALL a subroutine that sets R4, then RET back.
func scenarioCallRet() *Builder {
	return NewBuilder().
		Call("sub").
		Halt().
		Label("sub").
		AddI(4, 0, 55).
		Ret()
}

// Demo builds the richer demonstration program used by "basm build" (the
// default, headerless, no-flag action): it exercises every opcode at least
// once, supplementing the single hard-coded ADDI/ADDI/ADD/HALT sequence the
// original source used as its only example.
func Demo() *Builder {
	return NewBuilder().
		AddI(1, 0, 5).
		AddI(2, 0, 10).
		Add(3, 1, 2).    // R3 = 15
		Sub(4, 2, 1).    // R4 = 5
		SubI(5, 4, 2).   // R5 = 3
		AddI(6, 0, 100). // base address
		Stw(6, 0, 3).    // Mem[100..102] = R3
		Ldw(7, 6, 0).    // R7 = 15
		Call("double").
		Brz(8, "skip"). // R8 holds the doubled value, never zero: not taken
		Nop().
		Jmp("skip").
		AddI(9, 0, 1). // skipped by the JMP
		Label("skip").
		Halt().
		Label("double").
		Add(8, 7, 7). // R8 = R7 * 2 = 30
		Ret()
}
