package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      string
		wantError bool
	}{
		{name: "national mobile with mask", raw: "(11) 99999-0000", want: "5511999990000"},
		{name: "already international", raw: "+55 11 99999-0000", want: "5511999990000"},
		{name: "digits with country code", raw: "5521988887777", want: "5521988887777"},
		{name: "landline", raw: "11 3333-4444", want: "551133334444"},
		{name: "too short", raw: "1234", wantError: true},
		{name: "empty", raw: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJID(t *testing.T) {
	jid, err := JID("11999990000")
	require.NoError(t, err)
	assert.Equal(t, "5511999990000@s.whatsapp.net", jid)
	assert.Equal(t, "5511999990000", FromJID(jid))
	assert.Equal(t, "5511999990000", FromJID("5511999990000"))
}

func TestValidate(t *testing.T) {
	res, err := Validate("(11) 99999-0000")
	require.NoError(t, err)
	assert.True(t, res.IsValid)
	assert.Equal(t, "+5511999990000", res.E164Format)
	assert.Equal(t, "BR", res.Region)
	assert.True(t, res.Mobile)
}
