package convert

import (
	"errors"
	"math"
	"testing"
	"time"
	apperrors "utilkit/pkg/errors"
)

func TestToNumber(t *testing.T) {
	epoch := time.UnixMilli(1700000000000)

	tests := []struct {
		name    string
		input   any
		want    float64
		wantErr error
	}{
		{name: "nil", input: nil, want: 0},
		{name: "int", input: 42, want: 42},
		{name: "float32", input: float32(1.5), want: 1.5},
		{name: "numeric string", input: " 3.25 ", want: 3.25},
		{name: "blank string", input: "   ", want: 0},
		{name: "true", input: true, want: 1},
		{name: "false", input: false, want: 0},
		{name: "date as milliseconds", input: epoch, want: 1700000000000},
		{name: "non numeric string", input: "abc", wantErr: apperrors.ErrInvalidInput},
		{name: "slice", input: []int{1}, wantErr: apperrors.ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToNumber(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToNumber(%#v) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToNumber(%#v) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToNumber(%#v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToInteger(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr error
	}{
		{name: "float truncates", input: 3.9, want: 3},
		{name: "negative float truncates toward zero", input: -3.9, want: -3},
		{name: "string", input: "42", want: 42},
		{name: "decimal string", input: "7.8", want: 7},
		{name: "bool", input: true, want: 1},
		{name: "NaN", input: math.NaN(), wantErr: apperrors.ErrRange},
		{name: "map", input: map[string]int{}, wantErr: apperrors.ErrType},
		{name: "max int64", input: int64(math.MaxInt64), want: math.MaxInt64},
		{name: "uint64 within range", input: uint64(math.MaxInt64), want: math.MaxInt64},
		{name: "uint64 above int64 range", input: uint64(math.MaxUint64), wantErr: apperrors.ErrRange},
		{name: "min int64 as float", input: -0x1p63, want: math.MinInt64},
		{name: "float above int64 range", input: 1e30, wantErr: apperrors.ErrRange},
		{name: "float below int64 range", input: -1e30, wantErr: apperrors.ErrRange},
		{name: "float at 2^63", input: 0x1p63, wantErr: apperrors.ErrRange},
		{name: "exponent string above range", input: "1e30", wantErr: apperrors.ErrRange},
		{name: "exponent string below range", input: "-1e30", wantErr: apperrors.ErrRange},
		{name: "large integer string keeps precision", input: "9007199254740993", want: 9007199254740993},
		{name: "integer string above range", input: "9223372036854775808", wantErr: apperrors.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInteger(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToInteger(%#v) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToInteger(%#v) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToInteger(%#v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "nil", input: nil, want: ""},
		{name: "string", input: "x", want: "x"},
		{name: "int", input: 12, want: "12"},
		{name: "float", input: 1.5, want: "1.5"},
		{name: "bool", input: true, want: "true"},
		{name: "bytes", input: []byte("hi"), want: "hi"},
		{name: "date", input: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), want: "2024-01-02T03:04:05Z"},
		{name: "slice falls back to default format", input: []int{1, 2}, want: "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.input); got != tt.want {
				t.Errorf("ToString(%#v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		input   any
		want    bool
		wantErr bool
	}{
		{input: nil, want: false},
		{input: true, want: true},
		{input: "true", want: true},
		{input: " false ", want: false},
		{input: "1", want: true},
		{input: "0", want: false},
		{input: 0, want: false},
		{input: "maybe", wantErr: true},
		{input: []int{}, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ToBool(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ToBool(%#v) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToBool(%#v) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToBool(%#v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, 0, 0.0, math.NaN(), "", []int{}, map[string]int{}, []byte{}}
	truthy := []any{true, 1, -0.5, "0", []int{0}, map[string]int{"a": 0}, struct{}{}, time.Time{}}

	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("Truthy(%#v) = true, want false", v)
		}
	}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("Truthy(%#v) = false, want true", v)
		}
	}
}

func TestToSlice(t *testing.T) {
	if got := ToSlice(nil); len(got) != 0 || got == nil {
		t.Errorf("ToSlice(nil) = %#v, want empty non-nil slice", got)
	}
	got := ToSlice([]string{"a", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("ToSlice([]string) = %#v", got)
	}
	got = ToSlice(7)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("ToSlice(7) = %#v", got)
	}
}

func TestToStringSlice(t *testing.T) {
	got, err := ToStringSlice([]any{"a", 1, true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "1", "true"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToStringSlice()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	got, err = ToStringSlice("one two")
	if err != nil || len(got) != 2 {
		t.Errorf("ToStringSlice(\"one two\") = %v, %v", got, err)
	}

	got, err = ToStringSlice(nil)
	if err != nil || len(got) != 0 {
		t.Errorf("ToStringSlice(nil) = %v, %v", got, err)
	}
}

func TestTypeErrorOverrides(t *testing.T) {
	static := apperrors.Override{Message: "amount must be numeric"}
	computed := apperrors.Override{
		Code: apperrors.CodeInvalidInput,
		MessageFunc: func(e *apperrors.AppError) string {
			return "got " + e.Actual
		},
	}

	tests := []struct {
		name     string
		call     func() error
		wantCode string
		wantMsg  string
	}{
		{
			name:     "ToNumber static message",
			call:     func() error { _, err := ToNumber([]int{1}, static); return err },
			wantCode: apperrors.CodeType,
			wantMsg:  "amount must be numeric",
		},
		{
			name:     "ToInteger computed message and code",
			call:     func() error { _, err := ToInteger(map[string]int{}, computed); return err },
			wantCode: apperrors.CodeInvalidInput,
			wantMsg:  "got object (map[string]int)",
		},
		{
			name:     "ToBool static message",
			call:     func() error { _, err := ToBool([]int{}, static); return err },
			wantCode: apperrors.CodeType,
			wantMsg:  "amount must be numeric",
		},
		{
			name:     "ToStringSlice computed code",
			call:     func() error { _, err := ToStringSlice(struct{}{}, computed); return err },
			wantCode: apperrors.CodeInvalidInput,
			wantMsg:  "got struct (struct {})",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !apperrors.IsAppError(err) {
				t.Fatalf("expected an AppError, got %v", err)
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", appErr.Code, tt.wantCode)
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", appErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestOverridesLeaveSuccessAlone(t *testing.T) {
	got, err := ToNumber("2.5", apperrors.Override{Message: "unused"})
	if err != nil || got != 2.5 {
		t.Errorf("ToNumber(\"2.5\") = %v, %v", got, err)
	}
}
