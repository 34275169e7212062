package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_EmptyValues(t *testing.T) {
	kinds := []Kind{KindText, KindTextarea, KindNumber, KindEmail, KindPhone, Kind("unknown")}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			assert.Empty(t, Validate(kind, "", false))
			assert.Empty(t, Validate(kind, "   ", false))
			assert.Equal(t, MsgRequired, Validate(kind, "", true))
			assert.Equal(t, MsgRequired, Validate(kind, " \t", true))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		value string
		want  string
	}{
		{name: "email short domain", kind: KindEmail, value: "a@b.co", want: ""},
		{name: "email regular", kind: KindEmail, value: "jane.doe@example.com", want: ""},
		{name: "email without tld", kind: KindEmail, value: "a@b", want: MsgInvalidEmail},
		{name: "email without at", kind: KindEmail, value: "ab.co", want: MsgInvalidEmail},
		{name: "email with space", kind: KindEmail, value: "a b@c.de", want: MsgInvalidEmail},
		{name: "phone formatted", kind: KindPhone, value: "(555) 123-4567", want: ""},
		{name: "phone digits", kind: KindPhone, value: "5551234567", want: ""},
		{name: "phone nine digits", kind: KindPhone, value: "555123456", want: MsgInvalidPhone},
		{name: "phone eleven digits", kind: KindPhone, value: "15551234567", want: MsgInvalidPhone},
		{name: "phone letters only", kind: KindPhone, value: "call me", want: MsgInvalidPhone},
		{name: "number", kind: KindNumber, value: "42", want: ""},
		{name: "number decimal", kind: KindNumber, value: "4.2", want: MsgInvalidNum},
		{name: "number letters", kind: KindNumber, value: "abc", want: MsgInvalidNum},
		{name: "number negative", kind: KindNumber, value: "-1", want: MsgInvalidNum},
		{name: "text anything", kind: KindText, value: "anything at all", want: ""},
		{name: "textarea anything", kind: KindTextarea, value: "line one\nline two", want: ""},
		{name: "unknown kind behaves as text", kind: Kind("select"), value: "x", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.kind, tt.value, false))
			assert.Equal(t, tt.want, Validate(tt.kind, tt.value, true))
		})
	}
}

func TestValidate_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, MsgInvalidEmail, Validate(KindEmail, "a@b", true))
	}
}
