package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		want string
	}{
		{name: "threshold is hot", temp: 25, want: Hot},
		{name: "well below", temp: 15, want: Cold},
		{name: "below threshold", temp: 20, want: Cold},
		{name: "just under", temp: 24.9, want: Cold},
		{name: "above", temp: 30, want: Hot},
		{name: "freezing", temp: -5, want: Cold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.temp))
		})
	}
}
