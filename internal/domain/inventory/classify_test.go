package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name                 string
		current, min, max    int64
		want                 string
	}{
		{"sin stock con minimo positivo", 0, 10, 100, StatusInsufficient},
		{"igual al minimo", 10, 10, 100, StatusInsufficient},
		{"dentro del rango", 50, 10, 100, StatusNormal},
		{"igual al maximo", 100, 10, 100, StatusExcess},
		{"sobre el maximo", 150, 10, 100, StatusExcess},
		{"justo sobre el minimo", 11, 10, 100, StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.current, tc.min, tc.max))
		})
	}
}

// Con min == max == stock ganan ambas ramas; la precedencia documentada exige
// que el resultado sea insufficient.
func TestClassifyPrecedence(t *testing.T) {
	require.Equal(t, StatusInsufficient, Classify(20, 20, 20))
	require.Equal(t, StatusInsufficient, Classify(0, 0, 0))
}
