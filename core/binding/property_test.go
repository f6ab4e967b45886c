package binding

import (
	"errors"
	"testing"
)

// model is a minimal bindable owner used across the tests.
type model struct {
	Bindable
}

func TestProperty_ChangedValueNotifiesOnce(t *testing.T) {
	m := &model{}
	text := NewProperty(&m.Bindable, "Text", "")

	var notified []string
	m.OnPropertyChanged(func(name string) {
		notified = append(notified, name)
	})

	text.Set("hello")

	if len(notified) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notified))
	}
	if notified[0] != "Text" {
		t.Errorf("Notification name = %q, want Text", notified[0])
	}
	if text.Get() != "hello" {
		t.Errorf("Get() = %q, want hello", text.Get())
	}
}

func TestProperty_UnchangedValueIsNoOp(t *testing.T) {
	m := &model{}
	count := NewProperty(&m.Bindable, "Count", 7)

	var notifications int
	m.OnPropertyChanged(func(name string) {
		notifications++
	})

	// Equal to the initial value: no write, no notification.
	count.Set(7)
	if notifications != 0 {
		t.Errorf("Expected 0 notifications for unchanged set, got %d", notifications)
	}

	count.Set(8)
	count.Set(8)
	if notifications != 1 {
		t.Errorf("Expected 1 notification total, got %d", notifications)
	}
}

func TestProperty_InitialAndClear(t *testing.T) {
	m := &model{}
	text := NewProperty(&m.Bindable, "Text", "default")

	if text.Get() != "default" {
		t.Errorf("Unset Get() = %q, want default", text.Get())
	}

	text.Set("changed")
	if text.Get() != "changed" {
		t.Errorf("Get() = %q, want changed", text.Get())
	}

	text.Clear()
	if text.Get() != "default" {
		t.Errorf("Get() after Clear = %q, want default", text.Get())
	}

	// Setting the initial value after Clear is not a change.
	var notifications int
	m.OnPropertyChanged(func(name string) { notifications++ })
	text.Set("default")
	if notifications != 0 {
		t.Errorf("Expected 0 notifications, got %d", notifications)
	}
}

func TestProperty_CustomEquality(t *testing.T) {
	m := &model{}
	// Length-based equality: same-length strings are not a change.
	text := NewPropertyFunc(&m.Bindable, "Text", "abc", func(a, b string) bool {
		return len(a) == len(b)
	})

	var notifications int
	m.OnPropertyChanged(func(name string) { notifications++ })

	text.Set("xyz")
	if notifications != 0 {
		t.Errorf("Expected equality func to suppress notification, got %d", notifications)
	}

	text.Set("wxyz")
	if notifications != 1 {
		t.Errorf("Expected 1 notification, got %d", notifications)
	}
}

func TestBindable_ListenerRemovalAndNoDedup(t *testing.T) {
	m := &model{}

	var a, b int
	fn := func(name string) { a++ }

	// Same listener registered twice fires twice.
	id1 := m.OnPropertyChanged(fn)
	m.OnPropertyChanged(fn)
	m.OnPropertyChanged(func(name string) { b++ })

	m.RaisePropertyChanged("X")
	if a != 2 {
		t.Errorf("Expected duplicate listener to fire twice, got %d", a)
	}
	if b != 1 {
		t.Errorf("Expected 1 call, got %d", b)
	}

	m.RemovePropertyChanged(id1)
	m.RaisePropertyChanged("X")
	if a != 3 {
		t.Errorf("Expected 3 calls after removing one registration, got %d", a)
	}
}

func TestAccessor_CompareThenNotify(t *testing.T) {
	m := &model{}

	var backing string
	var hasValue bool
	acc := NewAccessor(&m.Bindable, "Label",
		func() (string, error) {
			if !hasValue {
				return "", errors.New("no value yet")
			}
			return backing, nil
		},
		func(v string) {
			backing = v
			hasValue = true
		})

	var notifications int
	m.OnPropertyChanged(func(name string) {
		if name != "Label" {
			t.Errorf("Notification name = %q, want Label", name)
		}
		notifications++
	})

	// Getter fails before the first set, so Get returns the zero value
	// and the first Set always counts as a change.
	if acc.Get() != "" {
		t.Errorf("Get() before first set = %q, want empty", acc.Get())
	}
	acc.Set("")
	if notifications != 1 {
		t.Fatalf("Expected first set to notify, got %d", notifications)
	}

	acc.Set("")
	if notifications != 1 {
		t.Errorf("Expected unchanged set to be a no-op, got %d", notifications)
	}

	acc.Set("on")
	if notifications != 2 {
		t.Errorf("Expected 2 notifications, got %d", notifications)
	}
	if acc.Get() != "on" {
		t.Errorf("Get() = %q, want on", acc.Get())
	}
}
