package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "already normalized",
			input: "+15551234567",
			want:  "+15551234567",
		},
		{
			name:  "with separators",
			input: "+1 (555) 123-4567",
			want:  "+15551234567",
		},
		{
			name:  "missing plus",
			input: "15551234567",
			want:  "+15551234567",
		},
		{
			name:    "too short",
			input:   "+12345",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "+1234567890123456",
			wantErr: true,
		},
		{
			name:    "leading zero",
			input:   "+05551234567",
			wantErr: true,
		},
		{
			name:    "letters",
			input:   "+1555CALLNOW",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
