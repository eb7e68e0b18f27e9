package quota

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare number", "50", "50%"},
		{"already percent", "50%", "50%"},
		{"empty means remove", "", ""},
		{"decimal", "12.5", "12.5%"},
		{"over hundred", "150", "150%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestDisplayPercent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"infinity means no limit", "infinity", "no limit", false},
		{"milliseconds", "500ms", "50.0%", false},
		{"microseconds", "50000us", "5.0%", false},
		{"bare value defaults to us", "50000", "5.0%", false},
		{"one second is a full core", "1s", "100.0%", false},
		{"m scales like ms", "300m", "30.0%", false},
		{"garbage", "half a second", "", true},
		{"decimal not accepted", "1.5s", "", true},
		{"empty value", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DisplayPercent(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
