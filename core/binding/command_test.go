package binding

import "testing"

type commandOwner struct {
	Bindable
	executed []any
	armed    bool
}

var testCmd = NewCommandSpec(func(o *commandOwner, param any) {
	o.executed = append(o.executed, param)
})

var testGuardedCmd = NewCommandSpec(func(o *commandOwner, param any) {
	o.executed = append(o.executed, param)
}).WithCanExecute(func(o *commandOwner) bool {
	return o.armed
})

func TestCommandSpec_IdentityStable(t *testing.T) {
	o := &commandOwner{}
	defer testCmd.Forget(o)

	first := testCmd.For(o)
	second := testCmd.For(o)
	if first != second {
		t.Error("For() must return the identical Command on repeated access")
	}

	other := &commandOwner{}
	defer testCmd.Forget(other)
	if testCmd.For(other) == first {
		t.Error("Distinct owners must get distinct Commands")
	}
}

func TestCommandSpec_ExecuteBindsOwner(t *testing.T) {
	o := &commandOwner{}
	defer testCmd.Forget(o)

	testCmd.For(o).Execute("5")
	testCmd.For(o).Execute("+")

	if len(o.executed) != 2 || o.executed[0] != "5" || o.executed[1] != "+" {
		t.Errorf("executed = %v, want [5 +]", o.executed)
	}
}

func TestCommand_CanExecuteDefaultsTrue(t *testing.T) {
	o := &commandOwner{}
	defer testCmd.Forget(o)

	if !testCmd.For(o).CanExecute() {
		t.Error("CanExecute() without a predicate must be true")
	}
}

func TestCommand_CanExecutePredicate(t *testing.T) {
	o := &commandOwner{}
	defer testGuardedCmd.Forget(o)

	cmd := testGuardedCmd.For(o)
	if cmd.CanExecute() {
		t.Error("Expected CanExecute() false while disarmed")
	}

	o.armed = true
	if !cmd.CanExecute() {
		t.Error("Expected CanExecute() true once armed")
	}
}

func TestCommand_RaiseCanExecuteChanged(t *testing.T) {
	cmd := NewCommand(func(param any) {}, nil)

	var calls int
	id := cmd.OnCanExecuteChanged(func() { calls++ })
	cmd.OnCanExecuteChanged(func() { calls++ })

	cmd.RaiseCanExecuteChanged()
	if calls != 2 {
		t.Errorf("Expected 2 listener calls, got %d", calls)
	}

	cmd.RemoveCanExecuteChanged(id)
	cmd.RaiseCanExecuteChanged()
	if calls != 3 {
		t.Errorf("Expected 3 listener calls after removal, got %d", calls)
	}
}

func TestCommandSpec_Forget(t *testing.T) {
	o := &commandOwner{}

	first := testCmd.For(o)
	testCmd.Forget(o)
	if testCmd.For(o) == first {
		t.Error("For() after Forget must mint a fresh Command")
	}
	testCmd.Forget(o)
}
