package ptr

import "testing"

func TestTo(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		s := "test"
		ptr := To(s)
		if ptr == nil {
			t.Fatal("Expected non-nil pointer")
		}
		if *ptr != s {
			t.Errorf("Expected %q, got %q", s, *ptr)
		}
		// Verify it's a different address
		if ptr == &s {
			t.Error("Expected different address")
		}
	})

	t.Run("int64", func(t *testing.T) {
		i := int64(42)
		ptr := To(i)
		if ptr == nil {
			t.Fatal("Expected non-nil pointer")
		}
		if *ptr != i {
			t.Errorf("Expected %d, got %d", i, *ptr)
		}
	})
}

func TestBool(t *testing.T) {
	b := true
	ptr := Bool(b)
	if ptr == nil {
		t.Fatal("Expected non-nil pointer")
	}
	if *ptr != b {
		t.Errorf("Expected %t, got %t", b, *ptr)
	}
}

func TestInt64(t *testing.T) {
	i := int64(9876543210)
	ptr := Int64(i)
	if ptr == nil {
		t.Fatal("Expected non-nil pointer")
	}
	if *ptr != i {
		t.Errorf("Expected %d, got %d", i, *ptr)
	}
}

func TestMutationIndependence(t *testing.T) {
	original := int64(7)
	ptr := Int64(original)

	// Modify through pointer
	*ptr = 8

	// Original should be unchanged
	if original != 7 {
		t.Error("Original value should not be affected by pointer mutation")
	}
	if *ptr != 8 {
		t.Error("Pointer value should be modified")
	}
}
