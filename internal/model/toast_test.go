package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToastInfoTimeout(t *testing.T) {
	ms := func(v int64) *int64 { return &v }

	tests := map[string]struct {
		timeout *int64
		want    time.Duration
		set     bool
	}{
		"unset":          {timeout: nil, want: 0, set: false},
		"regular":        {timeout: ms(1500), want: 1500 * time.Millisecond, set: true},
		"saturates high": {timeout: ms(math.MaxInt64), want: time.Duration(math.MaxInt64), set: true},
		"saturates low":  {timeout: ms(math.MinInt64), want: time.Duration(math.MinInt64), set: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ToastInfo{TimeoutMS: tc.timeout}.Timeout()
			require.Equal(t, tc.set, ok)
			require.Equal(t, tc.want, got)
		})
	}
}
