package utils

import (
	"testing"
)

func TestPickRandom(t *testing.T) {
	if _, ok := PickRandom([]int(nil)); ok {
		t.Error("PickRandom(nil) ok = true, want false")
	}
	if _, ok := PickRandom([]int{}); ok {
		t.Error("PickRandom(empty) ok = true, want false")
	}

	got, ok := PickRandom([]string{"only"})
	if !ok || got != "only" {
		t.Errorf("PickRandom(single) = %q, %v; want only, true", got, ok)
	}

	// ทุกค่าที่คืนมาต้องเป็นสมาชิกของ slice
	items := []int{1, 2, 3}
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v, ok := PickRandom(items)
		if !ok {
			t.Fatal("PickRandom returned not ok for non-empty slice")
		}
		if v < 1 || v > 3 {
			t.Fatalf("PickRandom returned %d, not a member", v)
		}
		seen[v] = true
	}
	// 200 รอบกับ 3 ตัวเลือก ควรเจอครบทุกตัว
	if len(seen) != 3 {
		t.Errorf("seen values = %v, want all members picked", seen)
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name string `validate:"required,min=2,max=5"`
	}

	if err := ValidateStruct(&payload{Name: "okay"}); err != nil {
		t.Errorf("valid payload error = %v, want nil", err)
	}

	tests := []struct {
		name    string
		input   payload
		message string
	}{
		{"missing", payload{}, "This field is required"},
		{"too short", payload{Name: "x"}, "Must be at least 2 characters"},
		{"too long", payload{Name: "toolong"}, "Must be at most 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("error = nil, want validation error")
			}

			fields := GetValidationErrors(err)
			if len(fields) != 1 {
				t.Fatalf("field errors = %d, want 1", len(fields))
			}
			if fields[0].Field != "name" {
				t.Errorf("field = %q, want name", fields[0].Field)
			}
			if fields[0].Message != tt.message {
				t.Errorf("message = %q, want %q", fields[0].Message, tt.message)
			}
		})
	}
}
